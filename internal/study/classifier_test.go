package study_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/studyloadgo/internal/study"
	"github.com/vk/studyloadgo/internal/testutil"
)

func TestClassify_FullStudyInventory(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFullStudy(t)

	inv, err := study.Classify(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, "study_es_0", inv.StudyID)
	require.Equal(t, filepath.Join(dir, "case_lists"), inv.CaseListsDir)
	require.Len(t, inv.SampleLists, 5)
	require.Equal(t, filepath.Join(dir, "case_lists", "cases_cna.txt"), inv.SampleLists[0])

	kinds := make(map[study.Kind]study.Descriptor)
	for _, d := range inv.Descriptors {
		kinds[d.Kind] = d
	}

	require.Len(t, inv.Descriptors, 24, "every meta file should classify to exactly one descriptor")

	seg := kinds[study.KindSegment]
	require.Equal(t, filepath.Join(dir, "meta_cna_hg19_seg.txt"), seg.MetaPath)
	require.Equal(t, filepath.Join(dir, "data_cna_hg19.seg"), seg.DataPath,
		"the data path must come from the meta header, not the meta file name")

	require.Equal(t, "study_es_0", kinds[study.KindGistic].StudyID)
	require.Empty(t, kinds[study.KindStudy].DataPath)

	for _, kind := range []study.Kind{
		study.KindCancerType, study.KindClinicalSample, study.KindClinicalPatient,
		study.KindCNALog2, study.KindCNADiscrete, study.KindExpression,
		study.KindExpressionZScore, study.KindGenericAssay, study.KindMethylation,
		study.KindMutationalSignature, study.KindMutation, study.KindTreatmentEC50,
		study.KindTreatmentIC50, study.KindStructuralVariant, study.KindGSVAScores,
		study.KindGSVAPvalues, study.KindGenePanelMatrix, study.KindResourceDefinition,
		study.KindResourceSample, study.KindResourcePatient, study.KindResourceStudy,
	} {
		require.Contains(t, kinds, kind, "missing descriptor for kind %s", kind)
	}
}

func TestClassify_DescriptorsInheritStudyID(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMeta(t, dir, "meta_study.txt",
		"type_of_cancer: brca",
		"cancer_study_identifier: study_x",
		"name: X")
	// No cancer_study_identifier of its own.
	testutil.WriteMetaWithData(t, dir, "meta_mutations_extended.txt", "data_mutations_extended.maf",
		"genetic_alteration_type: MUTATION_EXTENDED",
		"datatype: MAF")

	inv, err := study.Classify(context.Background(), dir)
	require.NoError(t, err)

	for _, d := range inv.Descriptors {
		require.Equal(t, "study_x", d.StudyID)
	}
}

func TestClassify_MissingDataFileFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMeta(t, dir, "meta_clinical_samples.txt",
		"cancer_study_identifier: study_x",
		"genetic_alteration_type: CLINICAL",
		"datatype: SAMPLE_ATTRIBUTES",
		"data_filename: data_clinical_samples.txt")

	_, err := study.Classify(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "data_clinical_samples.txt")
	require.Contains(t, err.Error(), "missing")
}

func TestClassify_MissingDataDeclarationFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMeta(t, dir, "meta_cna_log2.txt",
		"cancer_study_identifier: study_x",
		"genetic_alteration_type: COPY_NUMBER_ALTERATION",
		"datatype: LOG2-VALUE")

	_, err := study.Classify(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "data_filename")
}

func TestClassify_StudyMetaWithoutIdentifierFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMeta(t, dir, "meta_study.txt",
		"type_of_cancer: brca",
		"name: anonymous study")

	_, err := study.Classify(context.Background(), dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cancer_study_identifier")
}

func TestClassify_UnrecognizedFilesAreIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMeta(t, dir, "meta_study.txt",
		"type_of_cancer: brca",
		"cancer_study_identifier: study_x",
		"name: X")
	testutil.WriteFile(t, dir, "README.txt", "not a meta file\n")
	testutil.WriteFile(t, dir, "meta_something_else.txt", "a_key: with no recognizable kind\n")

	inv, err := study.Classify(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, inv.Descriptors, 1)
	require.Equal(t, study.KindStudy, inv.Descriptors[0].Kind)
}

// TestClassify_HeaderFallback: a meta file whose name matches no pattern is
// still classified from its declared alteration type.
func TestClassify_HeaderFallback(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMetaWithData(t, dir, "meta_custom_assay.txt", "data_custom_assay.txt",
		"cancer_study_identifier: study_x",
		"genetic_alteration_type: MRNA_EXPRESSION",
		"datatype: Z-SCORE")

	inv, err := study.Classify(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, inv.Descriptors, 1)
	require.Equal(t, study.KindExpressionZScore, inv.Descriptors[0].Kind)
}

func TestClassify_NoCaseListsDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.WriteMeta(t, dir, "meta_study.txt",
		"type_of_cancer: brca",
		"cancer_study_identifier: study_x",
		"name: X")

	inv, err := study.Classify(context.Background(), dir)
	require.NoError(t, err)
	require.Empty(t, inv.SampleLists)
	require.Equal(t, filepath.Join(dir, "case_lists"), inv.CaseListsDir,
		"the case-lists path is always addressable, present or not")
}

func TestClassify_MissingDirectoryFails(t *testing.T) {
	t.Parallel()

	_, err := study.Classify(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
