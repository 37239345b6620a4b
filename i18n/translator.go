package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field", "min" or "pattern").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"too_short":           "{field} is shorter than the minimum length of {min}",
		"too_long":            "{field} is longer than the maximum length of {max}",
		"too_small":           "{field} is less than the minimum value of {min}",
		"too_big":             "{field} is greater than the maximum value of {max}",
		"pattern":             "{field} does not match the pattern {pattern}",
		"invalid_enum":        "{field} is not one of the allowed codes",
		"too_few":             "{field} occurs fewer than {min} times",
		"too_many":            "{field} occurs more than {max} times",
		"invalid_choice":      "{field} must contain exactly one of its alternatives",
		"digits":              "{field} has too many digits",
		"invalid_format":      "{field} is not a valid {format}",
		"business_rule":       "{field} violates a business rule",
		"aggregate_violation": "{field} does not match the aggregate of its items",
		"uniqueness":          "{field} must be unique",
		"parse_error":         "parse error",
		"duplicate_key":       "duplicate key {key}",
		"truncated":           "input truncated",
		"invalid_type":        "invalid type",
		"unknown_document":    "Unknown document type",
	},
	"ja": {
		"too_short":           "{field} が最小長 {min} より短いです",
		"too_long":            "{field} が最大長 {max} を超えています",
		"too_small":           "{field} が最小値 {min} を下回っています",
		"too_big":             "{field} が最大値 {max} を超えています",
		"pattern":             "{field} がパターン {pattern} に一致しません",
		"invalid_enum":        "{field} は許可されたコードではありません",
		"too_few":             "{field} の出現回数が {min} 未満です",
		"too_many":            "{field} の出現回数が {max} を超えています",
		"invalid_choice":      "{field} はいずれか一つだけを含む必要があります",
		"digits":              "{field} の桁数が多すぎます",
		"invalid_format":      "{field} は有効な {format} ではありません",
		"business_rule":       "{field} が業務ルールに違反しています",
		"aggregate_violation": "{field} が明細の集計と一致しません",
		"uniqueness":          "{field} は一意である必要があります",
		"parse_error":         "解析エラー",
		"duplicate_key":       "キー {key} が重複しています",
		"truncated":           "打ち切られました",
		"invalid_type":        "型が不正です",
		"unknown_document":    "未知のドキュメント種別です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return strings.ReplaceAll(tpl, "{field} ", "")
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

var supported = []language.Tag{language.English, language.Japanese}

var matcher = language.NewMatcher(supported)

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language. Any BCP 47 tag is
// accepted ("ja-JP" selects Japanese); unsupported tags fall back to English.
func SetLanguage(lang string) {
	tag, _ := language.Parse(lang)
	_, idx, _ := matcher.Match(tag)
	base, _ := supported[idx].Base()
	mu.Lock()
	currentTranslator = dictTranslator{lang: base.String()}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
