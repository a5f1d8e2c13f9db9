package main

import "testing"

func TestEventMentionsView_ViewNameField(t *testing.T) {
	payload := []byte(`{"view_name":"roadmap","record_count":3}`)
	if !eventMentionsView(payload, "roadmap") {
		t.Error("got false for matching view_name, want true")
	}
	if eventMentionsView(payload, "other") {
		t.Error("got true for non-matching view_name, want false")
	}
}

func TestEventMentionsView_NestedView(t *testing.T) {
	payload := []byte(`{"view":{"name":"roadmap","description":"q3"}}`)
	if !eventMentionsView(payload, "roadmap") {
		t.Error("got false for matching view.name, want true")
	}
	if eventMentionsView(payload, "other") {
		t.Error("got true for non-matching view.name, want false")
	}
}

func TestEventMentionsView_NoViewName(t *testing.T) {
	// Events without a recognizable view name are treated as relevant.
	if !eventMentionsView([]byte(`{"snapshot_id":"gv-abc123"}`), "roadmap") {
		t.Error("got false for payload without view name, want true")
	}
}

func TestEventMentionsView_Unparseable(t *testing.T) {
	if !eventMentionsView([]byte("not json"), "roadmap") {
		t.Error("got false for unparseable payload, want true")
	}
}
