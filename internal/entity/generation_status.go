package entity

import "strings"

// GenerationStatus is the lifecycle state of an EntityProduct.
//
// pending is the queued state: the request is persisted and a job has been
// handed to the worker. generating is held while a worker owns the job.
type GenerationStatus string

const (
	GenerationStatusPending    GenerationStatus = "pending"
	GenerationStatusGenerating GenerationStatus = "generating"
	GenerationStatusSucceeded  GenerationStatus = "succeeded"
	GenerationStatusFailed     GenerationStatus = "failed"
)

var generationTransitions = map[GenerationStatus][]GenerationStatus{
	GenerationStatusPending:    {GenerationStatusGenerating, GenerationStatusSucceeded, GenerationStatusFailed},
	GenerationStatusGenerating: {GenerationStatusPending, GenerationStatusSucceeded, GenerationStatusFailed},
	GenerationStatusSucceeded:  {GenerationStatusPending, GenerationStatusGenerating},
	GenerationStatusFailed:     {GenerationStatusPending, GenerationStatusGenerating},
}

// ParseGenerationStatus normalizes raw input and reports whether it names a known state.
func ParseGenerationStatus(raw string) (GenerationStatus, bool) {
	status := GenerationStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", false
	}
	return status, true
}

func (s GenerationStatus) IsValid() bool {
	_, ok := generationTransitions[s]
	return ok
}

func (s GenerationStatus) IsTerminal() bool {
	return s == GenerationStatusSucceeded || s == GenerationStatusFailed
}

// CanTransitionTo reports whether target may follow s. Staying in the same state
// is always allowed, and rows carrying a status outside the enumeration (written
// before it existed) may move to any valid state.
func (s GenerationStatus) CanTransitionTo(target GenerationStatus) bool {
	if !target.IsValid() {
		return false
	}
	if s == target {
		return true
	}
	allowed, known := generationTransitions[s]
	if !known {
		return true
	}
	for _, next := range allowed {
		if next == target {
			return true
		}
	}
	return false
}

func (s GenerationStatus) String() string {
	return string(s)
}
