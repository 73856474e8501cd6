package pipeline

// Stage is one step of a pipeline run
type Stage string

const (
	StageSelect       Stage = "select"
	StageGenerate     Stage = "generate"
	StageResolveImage Stage = "resolve_image"
	StagePublish      Stage = "publish"
	StageNoMatch      Stage = "no_match"
	StageDone         Stage = "done"
)

// Outcome is the result of executing a stage
type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

// Next returns the stage that follows s given its outcome.
// Any failure ends the run; an empty selection goes through no_match.
func Next(s Stage, o Outcome) Stage {
	if o == OutcomeFailed {
		return StageDone
	}
	switch s {
	case StageSelect:
		if o == OutcomeEmpty {
			return StageNoMatch
		}
		return StageGenerate
	case StageGenerate:
		return StageResolveImage
	case StageResolveImage:
		return StagePublish
	default:
		return StageDone
	}
}
