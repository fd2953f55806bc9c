package plan

import (
	"github.com/vk/studyloadgo/internal/study"
)

// stepBuilder derives one importer invocation from a descriptor and the load
// mode. Builders are pure; the same inputs always yield the same step.
type stepBuilder func(d study.Descriptor, mode LoadMode) Step

// catalog is the fixed kind → step-template dispatch table. A classified kind
// missing from this table is a configuration error and the sequencer fails
// loudly rather than skipping it.
var catalog = map[study.Kind]stepBuilder{
	study.KindCancerType:          cancerTypeStep,
	study.KindStudy:               studyRegistrationStep,
	study.KindClinicalSample:      tabDelimStep(EntryImportClinical),
	study.KindClinicalPatient:     tabDelimStep(EntryImportClinical),
	study.KindResourceDefinition:  tabDelimStep(EntryImportResourceDef),
	study.KindResourceSample:      tabDelimStep(EntryImportResourceData),
	study.KindResourcePatient:     tabDelimStep(EntryImportResourceData),
	study.KindResourceStudy:       tabDelimStep(EntryImportResourceData),
	study.KindSegment:             tabDelimStep(EntryImportSegment),
	study.KindCNALog2:             profileStep,
	study.KindExpression:          profileStep,
	study.KindGenericAssay:        profileStep,
	study.KindGistic:              gisticStep,
	study.KindMethylation:         profileStep,
	study.KindMutationalSignature: profileStep,
	study.KindMutation:            profileStep,
	study.KindTreatmentEC50:       profileStep,
	study.KindTreatmentIC50:       profileStep,
	study.KindStructuralVariant:   profileStep,
	study.KindCNADiscrete:         profileStep,
	study.KindExpressionZScore:    profileStep,
	study.KindGSVAScores:          profileStep,
	study.KindGSVAPvalues:         profileStep,
	study.KindGenePanelMatrix:     genePanelMapStep,
}

func versionCheckStep() Step {
	return Step{EntryPoint: EntryVersionCheck}
}

func cancerTypeStep(d study.Descriptor, _ LoadMode) Step {
	return Step{
		EntryPoint: EntryImportCancerTypes,
		Args:       []string{d.DataPath, literalNoClobber, flagNoProgress},
	}
}

func studyRegistrationStep(d study.Descriptor, _ LoadMode) Step {
	return Step{
		EntryPoint: EntryImportStudy,
		Args:       []string{d.MetaPath, flagNoProgress},
	}
}

func removeStudyStep(studyID string) Step {
	return Step{
		EntryPoint: EntryRemoveStudy,
		Args:       []string{studyID, flagNoProgress},
	}
}

// tabDelimStep covers the clinical, resource and segment importers, which
// share one flag contract: bulkload without --update-info. Incremental loads
// prepend the overwrite flag.
func tabDelimStep(entryPoint string) stepBuilder {
	return func(d study.Descriptor, mode LoadMode) Step {
		args := make([]string, 0, 8)
		if mode == IncrementalLoad {
			args = append(args, "--overwrite-existing")
		}
		args = append(args, "--meta", d.MetaPath, "--loadMode", "bulkload", "--data", d.DataPath, flagNoProgress)
		return Step{EntryPoint: entryPoint, Args: args}
	}
}

// profileStep covers every molecular-profile kind. Profiles always carry the
// literal "--update-info False".
func profileStep(d study.Descriptor, mode LoadMode) Step {
	args := make([]string, 0, 10)
	if mode == IncrementalLoad {
		args = append(args, "--overwrite-existing")
	}
	args = append(args,
		"--meta", d.MetaPath,
		"--loadMode", "bulkload",
		"--update-info", literalNoUpdateInfo,
		"--data", d.DataPath,
		flagNoProgress)
	return Step{EntryPoint: EntryImportProfile, Args: args}
}

func gisticStep(d study.Descriptor, _ LoadMode) Step {
	return Step{
		EntryPoint: EntryImportGistic,
		Args:       []string{"--data", d.DataPath, "--study", d.StudyID, flagNoProgress},
	}
}

func genePanelMapStep(d study.Descriptor, _ LoadMode) Step {
	return Step{
		EntryPoint: EntryImportGenePanelMap,
		Args:       []string{"--meta", d.MetaPath, "--data", d.DataPath, flagNoProgress},
	}
}

func sampleListStep(path string) Step {
	return Step{
		EntryPoint: EntryImportSampleList,
		Args:       []string{path, flagNoProgress},
	}
}

func aggregateCaseListStep(studyID string) Step {
	return Step{
		EntryPoint: EntryAddCaseList,
		Args:       []string{studyID, aggregateCaseList, flagNoProgress},
	}
}

func finalizeStudyStep(studyID string) Step {
	return Step{
		EntryPoint: EntryUpdateStudyStatus,
		Args:       []string{studyID, statusAvailable, flagNoProgress},
	}
}

// updateCaseListsStep patches existing case lists with the sample ids of an
// incremental load. It is the one step without --noprogress; the collaborator
// command does not accept it.
func updateCaseListsStep(clinicalSampleMeta, caseListsDir string) Step {
	return Step{
		EntryPoint: EntryUpdateCaseListsByID,
		Args:       []string{"--meta", clinicalSampleMeta, "--case-lists", caseListsDir},
	}
}
