package prompt

import (
	"strings"
	"testing"
)

func TestBuildWithContext(t *testing.T) {
	document := "session text here"
	context := "last time restarting the dev server fixed it"

	got := Build(document, context)

	if !strings.Contains(got, document) {
		t.Error("prompt missing session document")
	}
	if !strings.Contains(got, context) {
		t.Error("prompt missing past experience context")
	}
	if !strings.Contains(got, "most relevant past experience") {
		t.Error("prompt missing past experience preamble")
	}
	if !strings.Contains(got, "draws insight from the related past experience") {
		t.Error("prompt missing grounded task")
	}
	if strings.Contains(got, "guidance based on the content") {
		t.Error("grounded prompt must not contain the ungrounded task")
	}
	if !strings.Contains(got, "under 120 words") {
		t.Error("prompt missing constraints")
	}
}

func TestBuildWithoutContext(t *testing.T) {
	document := "session text here"

	got := Build(document, "")

	if !strings.Contains(got, document) {
		t.Error("prompt missing session document")
	}
	if strings.Contains(got, "past experience") {
		t.Error("ungrounded prompt must not mention past experience")
	}
	if !strings.Contains(got, "guidance based on the content") {
		t.Error("prompt missing ungrounded task")
	}
	if !strings.Contains(got, "under 120 words") {
		t.Error("prompt missing constraints")
	}
}

func TestBuildContextVerbatim(t *testing.T) {
	// The full retrieved context goes into the prompt untruncated, only
	// the client-facing related_memory field is capped.
	longContext := strings.Repeat("past experience detail. ", 100)

	got := Build("doc", longContext)

	if !strings.Contains(got, longContext) {
		t.Error("prompt must carry the full context verbatim")
	}
}

func TestBuildBranchesOnlyOnContextPresence(t *testing.T) {
	grounded := Build("doc", "ctx")
	ungrounded := Build("doc", "")

	if grounded == ungrounded {
		t.Error("grounded and ungrounded prompts must differ")
	}

	// Same inputs, same prompt
	if Build("doc", "ctx") != grounded {
		t.Error("prompt rendering must be deterministic")
	}
}
