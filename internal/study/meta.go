package study

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Well-known meta header keys. Meta files are flat "key: value" descriptors;
// anything beyond these keys is the collaborator's business and is ignored.
const (
	headerDataFilename     = "data_filename"
	headerStudyIdentifier  = "cancer_study_identifier"
	headerAlterationType   = "genetic_alteration_type"
	headerDatatype         = "datatype"
	headerGenericAssayType = "generic_assay_type"
)

// parseMetaHeader reads a meta file's "key: value" lines into a map. Keys are
// lowercased; values keep their case (data file names and study ids are
// case-sensitive). Blank lines and lines without a colon are skipped.
func parseMetaHeader(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open meta file %s: %w", path, err)
	}
	defer f.Close()

	header := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		header[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meta file %s: %w", path, err)
	}
	return header, nil
}

// kindForMeta resolves the Kind of a meta file from its base name, falling
// back to the header's alteration-type/datatype discriminators for names
// outside the common vocabulary. Returns KindUnknown for unrecognized files.
func kindForMeta(name string, header map[string]string) Kind {
	switch name {
	case "meta_study.txt":
		return KindStudy
	case "meta_cancer_type.txt":
		return KindCancerType
	case "meta_clinical_samples.txt":
		return KindClinicalSample
	case "meta_clinical_patients.txt":
		return KindClinicalPatient
	case "meta_resource_definition.txt":
		return KindResourceDefinition
	case "meta_resource_sample.txt":
		return KindResourceSample
	case "meta_resource_patient.txt":
		return KindResourcePatient
	case "meta_resource_study.txt":
		return KindResourceStudy
	case "meta_gene_panel_matrix.txt":
		return KindGenePanelMatrix
	case "meta_mutational_signature.txt":
		return KindMutationalSignature
	case "meta_treatment_ec50.txt":
		return KindTreatmentEC50
	case "meta_treatment_ic50.txt":
		return KindTreatmentIC50
	case "meta_structural_variants.txt":
		return KindStructuralVariant
	case "meta_gsva_scores.txt":
		return KindGSVAScores
	case "meta_gsva_pvalues.txt":
		return KindGSVAPvalues
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "meta_cna_") && strings.Contains(lower, "_seg"):
		return KindSegment
	case strings.HasPrefix(lower, "meta_cna_log2"):
		return KindCNALog2
	case strings.HasPrefix(lower, "meta_cna"):
		return KindCNADiscrete
	case strings.HasPrefix(lower, "meta_expression") && strings.Contains(lower, "zscores"):
		return KindExpressionZScore
	case strings.HasPrefix(lower, "meta_expression"):
		return KindExpression
	case strings.HasPrefix(lower, "meta_generic_assay"):
		return KindGenericAssay
	case strings.HasPrefix(lower, "meta_gistic"):
		return KindGistic
	case strings.HasPrefix(lower, "meta_methylation"):
		return KindMethylation
	case strings.HasPrefix(lower, "meta_mutations"):
		return KindMutation
	}

	return kindFromHeader(header)
}

// kindFromHeader classifies a meta file whose name carries no recognizable
// pattern by its declared alteration type and datatype.
func kindFromHeader(header map[string]string) Kind {
	alteration := strings.ToUpper(header[headerAlterationType])
	datatype := strings.ToUpper(header[headerDatatype])

	switch alteration {
	case "CANCER_TYPE":
		return KindCancerType
	case "COPY_NUMBER_ALTERATION":
		switch datatype {
		case "SEG":
			return KindSegment
		case "DISCRETE":
			return KindCNADiscrete
		case "LOG2-VALUE", "CONTINUOUS":
			return KindCNALog2
		case "GISTIC_GENES_AMP", "GISTIC_GENES_DEL":
			return KindGistic
		}
	case "MRNA_EXPRESSION":
		if strings.Contains(datatype, "Z-SCORE") {
			return KindExpressionZScore
		}
		return KindExpression
	case "METHYLATION":
		return KindMethylation
	case "MUTATION_EXTENDED":
		return KindMutation
	case "STRUCTURAL_VARIANT":
		return KindStructuralVariant
	case "GENESET_SCORE":
		if strings.Contains(datatype, "P-VALUE") {
			return KindGSVAPvalues
		}
		return KindGSVAScores
	case "GENERIC_ASSAY":
		switch strings.ToUpper(header[headerGenericAssayType]) {
		case "MUTATIONAL_SIGNATURE":
			return KindMutationalSignature
		case "TREATMENT_RESPONSE":
			if strings.Contains(datatype, "IC50") {
				return KindTreatmentIC50
			}
			return KindTreatmentEC50
		}
		return KindGenericAssay
	case "GENE_PANEL_MATRIX":
		return KindGenePanelMatrix
	}
	return KindUnknown
}
