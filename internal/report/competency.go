package report

import (
	"sort"
	"strings"
	"time"
)

// ===== STAGES =====

type Stage string

const (
	StageBehavioral Stage = "behavioral"
	StageTechnical  Stage = "technical"
	StageCaseStudy  Stage = "case_study"
	StageOther      Stage = "other"
)

// ParseStage normalises a stored stage identifier; unknown values map to StageOther
func ParseStage(s string) Stage {
	switch Stage(strings.ToLower(strings.TrimSpace(s))) {
	case StageBehavioral:
		return StageBehavioral
	case StageTechnical:
		return StageTechnical
	case StageCaseStudy:
		return StageCaseStudy
	default:
		return StageOther
	}
}

// ===== COMPETENCY RADAR =====

type Competency string

const (
	CompetencyContentQuality  Competency = "content_quality"
	CompetencyLogicalThinking Competency = "logical_thinking"
	CompetencyExpression      Competency = "expression"
	CompetencyInnovation      Competency = "innovation"
	CompetencyProblemAnalysis Competency = "problem_analysis"
)

// Competencies lists the radar axes in display order
var Competencies = []Competency{
	CompetencyContentQuality,
	CompetencyLogicalThinking,
	CompetencyExpression,
	CompetencyInnovation,
	CompetencyProblemAnalysis,
}

const CompetencyFullMark = 5.0

// Older evaluations stored competency scores under their display labels
var competencyAliases = map[string]Competency{
	"内容质量": CompetencyContentQuality,
	"逻辑思维": CompetencyLogicalThinking,
	"表达能力": CompetencyExpression,
	"创新思维": CompetencyInnovation,
	"问题分析": CompetencyProblemAnalysis,
}

// ParseCompetency resolves a stored key to a Competency
func ParseCompetency(key string) (Competency, bool) {
	c := Competency(strings.ToLower(strings.TrimSpace(key)))
	for _, known := range Competencies {
		if c == known {
			return c, true
		}
	}
	c, ok := competencyAliases[strings.TrimSpace(key)]
	return c, ok
}

type RadarPoint struct {
	Competency Competency `json:"competency"`
	Score      float64    `json:"score"`
	FullMark   float64    `json:"full_mark"`
}

// CompetencyRadar lays out the five competency scores in fixed order. Missing scores are 0.
func CompetencyRadar(scores map[Competency]float64) []RadarPoint {
	points := make([]RadarPoint, 0, len(Competencies))
	for _, c := range Competencies {
		points = append(points, RadarPoint{
			Competency: c,
			Score:      scores[c],
			FullMark:   CompetencyFullMark,
		})
	}
	return points
}

// ===== GROWTH PATH =====

type Ability string

const (
	AbilityContent    Ability = "content"
	AbilityLogic      Ability = "logic"
	AbilityExpression Ability = "expression"
)

var Abilities = []Ability{AbilityContent, AbilityLogic, AbilityExpression}

// GrowthPoint holds the mean ability scores for one day of practice
type GrowthPoint struct {
	Date     time.Time           `json:"date"`
	Sessions int                 `json:"sessions"`
	Scores   map[Ability]float64 `json:"scores"`
}

// GrowthPath groups answered sessions by UTC day and averages each ability score.
func GrowthPath(sessions []Session) []GrowthPoint {
	type bucket struct {
		count int
		sums  map[Ability]float64
	}

	buckets := make(map[time.Time]*bucket)
	for _, s := range FilterAnswered(sessions) {
		t := s.CreatedAt.UTC()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

		b, ok := buckets[day]
		if !ok {
			b = &bucket{sums: make(map[Ability]float64, len(Abilities))}
			buckets[day] = b
		}
		b.count++
		b.sums[AbilityContent] += scoreOrZero(s.ContentScore)
		b.sums[AbilityLogic] += scoreOrZero(s.LogicScore)
		b.sums[AbilityExpression] += scoreOrZero(s.ExpressionScore)
	}

	path := make([]GrowthPoint, 0, len(buckets))
	for day, b := range buckets {
		scores := make(map[Ability]float64, len(b.sums))
		for ability, sum := range b.sums {
			scores[ability] = sum / float64(b.count)
		}
		path = append(path, GrowthPoint{Date: day, Sessions: b.count, Scores: scores})
	}

	sort.Slice(path, func(i, j int) bool {
		return path[i].Date.Before(path[j].Date)
	})
	return path
}

// LatestAbilityScores reads each ability from the last growth point, defaulting to 0
func LatestAbilityScores(path []GrowthPoint, abilities []Ability) []float64 {
	scores := make([]float64, len(abilities))
	if len(path) == 0 {
		return scores
	}

	latest := path[len(path)-1]
	for i, a := range abilities {
		scores[i] = latest.Scores[a]
	}
	return scores
}
