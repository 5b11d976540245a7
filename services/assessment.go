package services

import (
	"slices"

	"callcenter/catalog"
	"callcenter/profile"
)

// AssessmentOptions lists the accepted answers per question, in form order.
var AssessmentOptions = map[string][]string{
	profile.AnswerCoverage:   {"business_hours", "extended", "24/7"},
	profile.AnswerCompliance: {"standard", "moderate", "strict"},
	profile.AnswerCallVolume: {"low", "medium", "high"},
}

// answerWeights feed the overall score; the base of 20 plus the top answer
// of every question adds up to 100.
var answerWeights = map[string]map[string]float64{
	profile.AnswerCoverage:   {"business_hours": 5, "extended": 20, "24/7": 30},
	profile.AnswerCompliance: {"standard": 5, "moderate": 15, "strict": 25},
	profile.AnswerCallVolume: {"low": 5, "medium": 15, "high": 25},
}

const baseAssessmentScore = 20

// ScoreAssessment derives a result from raw answers. Unknown or missing
// answers add nothing to the score.
func ScoreAssessment(answers map[string]string) profile.AssessmentResult {
	score := float64(baseAssessmentScore)
	for question, weights := range answerWeights {
		score += weights[answers[question]]
	}

	res := profile.AssessmentResult{
		OverallScore:      score,
		SuggestedTier:     tierForScore(score),
		Recommendations:   []string{},
		RiskFactors:       []string{},
		Strengths:         []string{},
		SuggestedServices: []catalog.ServiceKey{},
	}
	suggest := func(keys ...catalog.ServiceKey) {
		for _, k := range keys {
			if !slices.Contains(res.SuggestedServices, k) {
				res.SuggestedServices = append(res.SuggestedServices, k)
			}
		}
	}

	switch answers[profile.AnswerCoverage] {
	case "24/7":
		res.Recommendations = append(res.Recommendations, "Cover nights and weekends with AI agent calling")
		res.RiskFactors = append(res.RiskFactors, "Round-the-clock coverage needs overlapping shifts")
		suggest(catalog.AIAgentCalling, catalog.InboundSupport)
	case "extended":
		res.Recommendations = append(res.Recommendations, "Add live chat to absorb evening peaks")
		suggest(catalog.InboundSupport, catalog.LiveChat)
	case "business_hours":
		res.Strengths = append(res.Strengths, "Predictable staffing window")
		suggest(catalog.InboundSupport)
	}

	switch answers[profile.AnswerCompliance] {
	case "strict":
		res.Recommendations = append(res.Recommendations, "Record and score calls for an audit trail")
		res.RiskFactors = append(res.RiskFactors, "Strict regulatory requirements on call handling")
		suggest(catalog.QualityMonitoring)
	case "moderate":
		res.Recommendations = append(res.Recommendations, "Spot-check a sample of calls each week")
	case "standard":
		res.Strengths = append(res.Strengths, "Low regulatory overhead")
	}

	switch answers[profile.AnswerCallVolume] {
	case "high":
		res.Recommendations = append(res.Recommendations, "Track queue times and deflection with analytics")
		res.RiskFactors = append(res.RiskFactors, "High volume makes queue spikes likely")
		suggest(catalog.Analytics, catalog.LiveChat)
	case "medium":
		suggest(catalog.Analytics)
	case "low":
		res.Strengths = append(res.Strengths, "Volume fits a lean team")
	}

	return res
}

func tierForScore(score float64) catalog.Tier {
	switch {
	case score >= 70:
		return catalog.TierEnterprise
	case score >= 40:
		return catalog.TierProfessional
	default:
		return catalog.TierStarter
	}
}
