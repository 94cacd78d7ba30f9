package dispatch

import "testing"

func TestRequireNonEmpty(t *testing.T) {
	if err := RequireNonEmpty("Pizza", ErrMsgKeyRequired); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	err := RequireNonEmpty("", ErrMsgKeyRequired)
	if err == nil {
		t.Fatal("expected error for empty field")
	}
	if err.Code != StatusInvalidArgument || err.Message != ErrMsgKeyRequired {
		t.Errorf("unexpected error: %+v", err)
	}
}

func TestRequireFound(t *testing.T) {
	if err := RequireFound(true, ErrMsgProductNotFound); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := RequireFound(false, ErrMsgProductNotFound); err == nil || err.Message != ErrMsgProductNotFound {
		t.Errorf("expected %q, got %v", ErrMsgProductNotFound, err)
	}
}
