package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("invalid_type", nil); msg != "invalid type" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("invalid_type", nil); msg == "invalid type" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_Placeholders(t *testing.T) {
	got := T("too_long", map[string]string{"field": "MsgId", "max": "35"})
	if got != "MsgId is longer than the maximum length of 35" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestTranslator_RegionalTagMatchesBase(t *testing.T) {
	SetLanguage("ja-JP")
	defer SetLanguage("en")
	got := T("unknown_document", nil)
	if got != "未知のドキュメント種別です" {
		t.Fatalf("expected japanese message for ja-JP, got %q", got)
	}
}

func TestTranslator_UnsupportedFallsBackToEnglish(t *testing.T) {
	SetLanguage("fr-FR")
	defer SetLanguage("en")
	if got := T("unknown_document", nil); got != "Unknown document type" {
		t.Fatalf("expected english fallback, got %q", got)
	}
}

func TestTranslator_UnknownCodeEchoed(t *testing.T) {
	if got := T("no_such_code", nil); got != "no_such_code" {
		t.Fatalf("expected code echo, got %q", got)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }

func TestSetTranslator_CustomAndReset(t *testing.T) {
	SetTranslator(fixed("custom"))
	if got := T("too_short", nil); got != "custom" {
		t.Fatalf("expected custom translator, got %q", got)
	}
	SetTranslator(nil)
	if got := T("truncated", nil); got != "input truncated" {
		t.Fatalf("expected default translator after reset, got %q", got)
	}
}
