package plan

// Entry points of the external importer, one fully-qualified class name per
// operation. These strings are a CLI compatibility contract with the
// collaborator jar and must not be edited casually.
const (
	EntryVersionCheck        = "org.mskcc.cbio.portal.util.VersionUtil"
	EntryImportCancerTypes   = "org.mskcc.cbio.portal.scripts.ImportTypesOfCancers"
	EntryRemoveStudy         = "org.mskcc.cbio.portal.scripts.RemoveCancerStudy"
	EntryImportStudy         = "org.mskcc.cbio.portal.scripts.ImportCancerStudy"
	EntryImportClinical      = "org.mskcc.cbio.portal.scripts.ImportClinicalData"
	EntryImportResourceDef   = "org.mskcc.cbio.portal.scripts.ImportResourceDefinition"
	EntryImportResourceData  = "org.mskcc.cbio.portal.scripts.ImportResourceData"
	EntryImportSegment       = "org.mskcc.cbio.portal.scripts.ImportCopyNumberSegmentData"
	EntryImportProfile       = "org.mskcc.cbio.portal.scripts.ImportProfileData"
	EntryImportGistic        = "org.mskcc.cbio.portal.scripts.ImportGisticData"
	EntryImportGenePanelMap  = "org.mskcc.cbio.portal.scripts.ImportGenePanelProfileMap"
	EntryImportSampleList    = "org.mskcc.cbio.portal.scripts.ImportSampleList"
	EntryAddCaseList         = "org.mskcc.cbio.portal.scripts.AddCaseList"
	EntryUpdateStudyStatus   = "org.mskcc.cbio.portal.scripts.UpdateCancerStudy"
	EntryUpdateCaseListsByID = "org.mskcc.cbio.portal.scripts.UpdateCaseListsSampleIds"
)

// Literal argument values the collaborator's parser expects verbatim. The
// booleans are strings on purpose; do not "fix" them to Go bools.
const (
	literalNoClobber    = "false"
	literalNoUpdateInfo = "False"
	statusAvailable     = "AVAILABLE"
	aggregateCaseList   = "all"
	flagNoProgress      = "--noprogress"
)

// Step is one external importer invocation: the entry point plus its fully
// ordered argument list, exactly as the collaborator's CLI expects them.
type Step struct {
	EntryPoint string
	Args       []string
}

// Plan is the ordered sequence of steps for one run. It is built once and
// only read afterwards.
type Plan struct {
	Steps []Step
}
