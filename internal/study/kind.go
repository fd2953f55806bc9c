package study

// Kind identifies one of the recognized meta/data file categories. The
// vocabulary is fixed and finite: a filename (or its meta header) either maps
// to exactly one Kind or the file is ignored.
type Kind int

const (
	KindUnknown Kind = iota
	KindCancerType
	KindStudy
	KindClinicalSample
	KindClinicalPatient
	KindResourceDefinition
	KindResourceSample
	KindResourcePatient
	KindResourceStudy
	KindSegment
	KindCNALog2
	KindExpression
	KindGenericAssay
	KindGistic
	KindMethylation
	KindMutationalSignature
	KindMutation
	KindTreatmentEC50
	KindTreatmentIC50
	KindStructuralVariant
	KindCNADiscrete
	KindExpressionZScore
	KindGSVAScores
	KindGSVAPvalues
	KindGenePanelMatrix
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindCancerType:          "cancer-type",
	KindStudy:               "study",
	KindClinicalSample:      "clinical-sample",
	KindClinicalPatient:     "clinical-patient",
	KindResourceDefinition:  "resource-definition",
	KindResourceSample:      "resource-sample",
	KindResourcePatient:     "resource-patient",
	KindResourceStudy:       "resource-study",
	KindSegment:             "copy-number-segment",
	KindCNALog2:             "cna-log2",
	KindExpression:          "expression",
	KindGenericAssay:        "generic-assay",
	KindGistic:              "gistic",
	KindMethylation:         "methylation",
	KindMutationalSignature: "mutational-signature",
	KindMutation:            "mutation",
	KindTreatmentEC50:       "treatment-ec50",
	KindTreatmentIC50:       "treatment-ic50",
	KindStructuralVariant:   "structural-variant",
	KindCNADiscrete:         "cna-discrete",
	KindExpressionZScore:    "expression-zscore",
	KindGSVAScores:          "gsva-scores",
	KindGSVAPvalues:         "gsva-pvalues",
	KindGenePanelMatrix:     "gene-panel-matrix",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// RequiresData reports whether a meta file of this Kind must name a paired
// bulk data file. The study meta is a pure declaration and does not; case
// lists are self-contained files and never pass through here.
func (k Kind) RequiresData() bool {
	switch k {
	case KindStudy, KindUnknown:
		return false
	}
	return true
}
