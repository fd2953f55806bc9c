package study

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/studyloadgo/internal/ctxlog"
	"github.com/vk/studyloadgo/internal/fsutil"
)

// Descriptor is the typed result of classifying one recognized meta file.
type Descriptor struct {
	Kind     Kind
	MetaPath string
	// DataPath is the paired bulk data file, empty for kinds that are pure
	// declarations.
	DataPath string
	// StudyID is the study this entity belongs to, resolved from the meta
	// file's own header or transitively from the directory's study meta.
	StudyID string
}

// Inventory is everything the classifier found in one study directory.
type Inventory struct {
	Dir         string
	StudyID     string
	Descriptors []Descriptor
	// SampleLists are the case_lists/*.txt files, sorted by name.
	SampleLists []string
	// CaseListsDir is the case_lists subdirectory path; set even when the
	// directory is absent so incremental plans can always address it.
	CaseListsDir string
}

// caseListsDirName is fixed by the collaborator's directory layout contract.
const caseListsDirName = "case_lists"

// Classify scans a study directory and produces descriptors for every
// recognized file. Unrecognized files are ignored. It is read-only apart from
// parsing each meta file's header, and may be invoked repeatedly.
func Classify(ctx context.Context, dir string) (*Inventory, error) {
	logger := ctxlog.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read study directory %s: %w", dir, err)
	}

	inv := &Inventory{
		Dir:          dir,
		CaseListsDir: filepath.Join(dir, caseListsDirName),
	}

	// ReadDir sorts by name, so descriptors come out in a stable order.
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, "meta_") {
			continue
		}

		metaPath := filepath.Join(dir, name)
		header, err := parseMetaHeader(metaPath)
		if err != nil {
			return nil, err
		}

		kind := kindForMeta(name, header)
		if kind == KindUnknown {
			logger.Debug("Ignoring unrecognized meta file.", "file", name)
			continue
		}

		desc := Descriptor{
			Kind:     kind,
			MetaPath: metaPath,
			StudyID:  header[headerStudyIdentifier],
		}

		if dataName, ok := header[headerDataFilename]; ok {
			desc.DataPath = filepath.Join(dir, dataName)
		}
		if err := checkDataFile(desc, name); err != nil {
			return nil, err
		}

		if kind == KindStudy {
			if desc.StudyID == "" {
				return nil, fmt.Errorf("study meta file %s declares no %s", metaPath, headerStudyIdentifier)
			}
			inv.StudyID = desc.StudyID
		}

		inv.Descriptors = append(inv.Descriptors, desc)
		logger.Debug("Classified meta file.", "file", name, "kind", kind.String())
	}

	// Descriptors without their own study identifier inherit the directory's.
	for i := range inv.Descriptors {
		if inv.Descriptors[i].StudyID == "" {
			inv.Descriptors[i].StudyID = inv.StudyID
		}
	}
	sort.SliceStable(inv.Descriptors, func(i, j int) bool {
		return inv.Descriptors[i].MetaPath < inv.Descriptors[j].MetaPath
	})

	if fsutil.IsDir(inv.CaseListsDir) {
		lists, err := fsutil.ListFilesByExtension(inv.CaseListsDir, ".txt")
		if err != nil {
			return nil, fmt.Errorf("failed to read case lists directory %s: %w", inv.CaseListsDir, err)
		}
		inv.SampleLists = lists
	}

	logger.Debug("Directory classification finished.",
		"dir", dir, "descriptors", len(inv.Descriptors), "sampleLists", len(inv.SampleLists))
	return inv, nil
}

// checkDataFile enforces the paired-data-file rule: kinds that require a bulk
// data file must both declare it and have it present on disk.
func checkDataFile(desc Descriptor, metaName string) error {
	if !desc.Kind.RequiresData() {
		return nil
	}
	if desc.DataPath == "" {
		return fmt.Errorf("meta file %s (%s) declares no %s", metaName, desc.Kind, headerDataFilename)
	}
	if _, err := os.Stat(desc.DataPath); err != nil {
		return fmt.Errorf("data file %s required by %s is missing: %w", desc.DataPath, metaName, err)
	}
	return nil
}
