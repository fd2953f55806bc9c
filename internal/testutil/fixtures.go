// Package testutil provides fixture builders and runner stubs shared by the
// package-level tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFile writes contents under dir, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// WriteMeta writes a meta file from "key: value" header lines.
func WriteMeta(t *testing.T, dir, name string, headerLines ...string) string {
	t.Helper()
	return WriteFile(t, dir, name, strings.Join(headerLines, "\n")+"\n")
}

// WriteMetaWithData writes a meta file declaring dataName as its paired data
// file, plus a small data file so the classifier's existence check passes.
func WriteMetaWithData(t *testing.T, dir, metaName, dataName string, headerLines ...string) string {
	t.Helper()
	lines := append(append([]string(nil), headerLines...), "data_filename: "+dataName)
	metaPath := WriteMeta(t, dir, metaName, lines...)
	WriteFile(t, dir, dataName, "ID\tVALUE\nS1\t1\n")
	return metaPath
}

// WriteFullStudy builds the canonical whole-study fixture (the study_es_0
// layout) in a temp directory and returns its path.
func WriteFullStudy(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	const study = "cancer_study_identifier: study_es_0"

	WriteMeta(t, dir, "meta_study.txt",
		"type_of_cancer: brca",
		study,
		"name: Test study es_0",
		"description: Test study es_0")

	WriteMetaWithData(t, dir, "meta_cancer_type.txt", "data_cancer_type.txt",
		"genetic_alteration_type: CANCER_TYPE",
		"datatype: CANCER_TYPE")
	WriteMetaWithData(t, dir, "meta_clinical_samples.txt", "data_clinical_samples.txt",
		study,
		"genetic_alteration_type: CLINICAL",
		"datatype: SAMPLE_ATTRIBUTES")
	WriteMetaWithData(t, dir, "meta_clinical_patients.txt", "data_clinical_patients.txt",
		study,
		"genetic_alteration_type: CLINICAL",
		"datatype: PATIENT_ATTRIBUTES")
	WriteMetaWithData(t, dir, "meta_resource_definition.txt", "data_resource_definition.txt",
		study,
		"resource_type: DEFINITION")
	WriteMetaWithData(t, dir, "meta_resource_sample.txt", "data_resource_sample.txt",
		study,
		"resource_type: SAMPLE")
	WriteMetaWithData(t, dir, "meta_resource_patient.txt", "data_resource_patient.txt",
		study,
		"resource_type: PATIENT")
	WriteMetaWithData(t, dir, "meta_resource_study.txt", "data_resource_study.txt",
		study,
		"resource_type: STUDY")
	WriteMetaWithData(t, dir, "meta_cna_hg19_seg.txt", "data_cna_hg19.seg",
		study,
		"genetic_alteration_type: COPY_NUMBER_ALTERATION",
		"datatype: SEG",
		"reference_genome_id: hg19")
	WriteMetaWithData(t, dir, "meta_cna_log2.txt", "data_cna_log2.txt",
		study,
		"genetic_alteration_type: COPY_NUMBER_ALTERATION",
		"datatype: LOG2-VALUE")
	WriteMetaWithData(t, dir, "meta_cna_discrete.txt", "data_cna_discrete.txt",
		study,
		"genetic_alteration_type: COPY_NUMBER_ALTERATION",
		"datatype: DISCRETE")
	WriteMetaWithData(t, dir, "meta_expression_median.txt", "data_expression_median.txt",
		study,
		"genetic_alteration_type: MRNA_EXPRESSION",
		"datatype: CONTINUOUS")
	WriteMetaWithData(t, dir, "meta_expression_median_Zscores.txt", "data_expression_median_Zscores.txt",
		study,
		"genetic_alteration_type: MRNA_EXPRESSION",
		"datatype: Z-SCORE")
	WriteMetaWithData(t, dir, "meta_generic_assay_patient_test.txt", "data_generic_assay_patient_test.txt",
		study,
		"genetic_alteration_type: GENERIC_ASSAY",
		"datatype: LIMIT-VALUE")
	WriteMetaWithData(t, dir, "meta_gistic_genes_amp.txt", "data_gistic_genes_amp.txt",
		study,
		"genetic_alteration_type: COPY_NUMBER_ALTERATION",
		"datatype: GISTIC_GENES_AMP",
		"reference_genome_id: hg19")
	WriteMetaWithData(t, dir, "meta_methylation_hm27.txt", "data_methylation_hm27.txt",
		study,
		"genetic_alteration_type: METHYLATION",
		"datatype: CONTINUOUS")
	WriteMetaWithData(t, dir, "meta_mutational_signature.txt", "data_mutational_signature.txt",
		study,
		"genetic_alteration_type: GENERIC_ASSAY",
		"generic_assay_type: MUTATIONAL_SIGNATURE",
		"datatype: LIMIT-VALUE")
	WriteMetaWithData(t, dir, "meta_mutations_extended.txt", "data_mutations_extended.maf",
		study,
		"genetic_alteration_type: MUTATION_EXTENDED",
		"datatype: MAF")
	WriteMetaWithData(t, dir, "meta_treatment_ec50.txt", "data_treatment_ec50.txt",
		study,
		"genetic_alteration_type: GENERIC_ASSAY",
		"generic_assay_type: TREATMENT_RESPONSE",
		"datatype: LIMIT-VALUE")
	WriteMetaWithData(t, dir, "meta_treatment_ic50.txt", "data_treatment_ic50.txt",
		study,
		"genetic_alteration_type: GENERIC_ASSAY",
		"generic_assay_type: TREATMENT_RESPONSE",
		"datatype: LIMIT-VALUE")
	WriteMetaWithData(t, dir, "meta_structural_variants.txt", "data_structural_variants.txt",
		study,
		"genetic_alteration_type: STRUCTURAL_VARIANT",
		"datatype: SV")
	WriteMetaWithData(t, dir, "meta_gsva_scores.txt", "data_gsva_scores.txt",
		study,
		"genetic_alteration_type: GENESET_SCORE",
		"datatype: GSVA-SCORE")
	WriteMetaWithData(t, dir, "meta_gsva_pvalues.txt", "data_gsva_pvalues.txt",
		study,
		"genetic_alteration_type: GENESET_SCORE",
		"datatype: P-VALUE")
	WriteMetaWithData(t, dir, "meta_gene_panel_matrix.txt", "data_gene_panel_matrix.txt",
		study,
		"genetic_alteration_type: GENE_PANEL_MATRIX",
		"datatype: GENE_PANEL_MATRIX")

	for _, name := range []string{"cases_cna", "cases_cnaseq", "cases_custom", "cases_sequenced", "cases_test"} {
		WriteFile(t, dir, filepath.Join("case_lists", name+".txt"),
			study+"\nstable_id: study_es_0_"+strings.TrimPrefix(name, "cases_")+"\ncase_list_ids: S1\n")
	}

	return dir
}

// WriteIncrementalStudy builds the canonical delta fixture: patched clinical
// patients, clinical samples, and a MAF, plus a case_lists directory.
func WriteIncrementalStudy(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	const study = "cancer_study_identifier: study_es_0"

	WriteMetaWithData(t, dir, "meta_clinical_patients.txt", "data_clinical_patients.txt",
		study,
		"genetic_alteration_type: CLINICAL",
		"datatype: PATIENT_ATTRIBUTES")
	WriteMetaWithData(t, dir, "meta_clinical_samples.txt", "data_clinical_samples.txt",
		study,
		"genetic_alteration_type: CLINICAL",
		"datatype: SAMPLE_ATTRIBUTES")
	WriteMetaWithData(t, dir, "meta_mutations_extended.txt", "data_mutations_extended.maf",
		study,
		"genetic_alteration_type: MUTATION_EXTENDED",
		"datatype: MAF")
	WriteFile(t, dir, filepath.Join("case_lists", "cases_sequenced.txt"),
		study+"\nstable_id: study_es_0_sequenced\ncase_list_ids: S1\n")

	return dir
}
