package plan

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/studyloadgo/internal/ctxlog"
	"github.com/vk/studyloadgo/internal/study"
)

// Fixed category ranks for a full load. Re-ordering the pipeline is a data
// change here, not a code change. Gaps leave room for new categories.
const (
	rankVersionCheck      = 0
	rankRemoveStudy       = 20
	rankSampleLists       = 260
	rankAggregateCaseList = 270
	rankFinalize          = 280
)

var fullRank = map[study.Kind]int{
	study.KindCancerType:          10,
	study.KindStudy:               30,
	study.KindClinicalSample:      40,
	study.KindResourceDefinition:  50,
	study.KindResourceSample:      60,
	study.KindClinicalPatient:     70,
	study.KindSegment:             80,
	study.KindCNALog2:             90,
	study.KindExpression:          100,
	study.KindGenericAssay:        110,
	study.KindGistic:              120,
	study.KindMethylation:         130,
	study.KindMutationalSignature: 140,
	study.KindMutation:            150,
	study.KindResourcePatient:     160,
	study.KindResourceStudy:       170,
	study.KindTreatmentEC50:       180,
	study.KindTreatmentIC50:       190,
	study.KindStructuralVariant:   200,
	study.KindCNADiscrete:         210,
	study.KindExpressionZScore:    220,
	study.KindGSVAScores:          230,
	study.KindGSVAPvalues:         240,
	study.KindGenePanelMatrix:     250,
}

// An incremental load collapses to a short patch pipeline: patients before
// samples, then the MAF profile, then the case-list id update. Kinds outside
// this table are silently omitted in incremental mode.
var incrementalRank = map[study.Kind]int{
	study.KindClinicalPatient: 10,
	study.KindClinicalSample:  20,
	study.KindMutation:        30,
}

const rankUpdateCaseLists = 40

// Build sequences the classified inventory into a single total order for the
// given load mode. It is pure apart from logging: the same inventory and mode
// always produce an identical plan.
func Build(ctx context.Context, inv *study.Inventory, mode LoadMode) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)

	var p *Plan
	var err error
	switch mode {
	case FullLoad:
		p, err = buildFull(inv)
	case IncrementalLoad:
		p, err = buildIncremental(inv)
	default:
		return nil, fmt.Errorf("unknown load mode %d", mode)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Load plan sequenced.", "mode", mode.String(), "steps", len(p.Steps))
	return p, nil
}

type rankedStep struct {
	rank int
	step Step
}

func buildFull(inv *study.Inventory) (*Plan, error) {
	if inv.StudyID == "" {
		return nil, fmt.Errorf("no study meta file found in %s: a full load requires meta_study.txt", inv.Dir)
	}

	items := []rankedStep{{rankVersionCheck, versionCheckStep()}}

	for _, d := range inv.Descriptors {
		builder, ok := catalog[d.Kind]
		if !ok {
			return nil, fmt.Errorf("no catalog entry for recognized file kind %q (meta file %s)", d.Kind, d.MetaPath)
		}
		items = append(items, rankedStep{fullRank[d.Kind], builder(d, FullLoad)})

		// Registering a study is preceded by an idempotent pre-clean so full
		// loads are safely re-runnable.
		if d.Kind == study.KindStudy {
			items = append(items, rankedStep{rankRemoveStudy, removeStudyStep(inv.StudyID)})
		}
	}

	for _, path := range inv.SampleLists {
		items = append(items, rankedStep{rankSampleLists, sampleListStep(path)})
	}
	items = append(items,
		rankedStep{rankAggregateCaseList, aggregateCaseListStep(inv.StudyID)},
		rankedStep{rankFinalize, finalizeStudyStep(inv.StudyID)},
	)

	return sequence(items), nil
}

func buildIncremental(inv *study.Inventory) (*Plan, error) {
	items := []rankedStep{{rankVersionCheck, versionCheckStep()}}

	for _, d := range inv.Descriptors {
		if d.Kind == study.KindStudy {
			return nil, fmt.Errorf("incremental directory %s contains %s: deltas apply to an already-registered study", inv.Dir, d.MetaPath)
		}
		rank, ok := incrementalRank[d.Kind]
		if !ok {
			// Not part of the incremental subset; omission is never an error.
			continue
		}
		builder, exists := catalog[d.Kind]
		if !exists {
			return nil, fmt.Errorf("no catalog entry for recognized file kind %q (meta file %s)", d.Kind, d.MetaPath)
		}
		items = append(items, rankedStep{rank, builder(d, IncrementalLoad)})

		if d.Kind == study.KindClinicalSample {
			items = append(items, rankedStep{rankUpdateCaseLists, updateCaseListsStep(d.MetaPath, inv.CaseListsDir)})
		}
	}

	return sequence(items), nil
}

// Removal builds the two-step plan that drops an already-loaded study.
func Removal(studyID string) *Plan {
	return &Plan{Steps: []Step{versionCheckStep(), removeStudyStep(studyID)}}
}

// sequence orders ranked steps into the final plan. The sort is stable, so
// within one rank the classifier's name order (and sample-list discovery
// order) is preserved.
func sequence(items []rankedStep) *Plan {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].rank < items[j].rank
	})
	p := &Plan{Steps: make([]Step, 0, len(items))}
	for _, item := range items {
		p.Steps = append(p.Steps, item.step)
	}
	return p
}
