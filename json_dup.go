package iso20022

import (
	"io"

	"github.com/reoring/iso20022/i18n"
	eng "github.com/reoring/iso20022/internal/engine"
)

// DetectJSONDuplicateKeysBytes is a thin wrapper that detects duplicate keys in
// JSON byte slices. The implementation delegates to internal/engine.
func DetectJSONDuplicateKeysBytes(data []byte, strict Strictness, maxIssues int) (Issues, error) {
	mode := toEngineDup(strict.OnDuplicateKey)
	si, err := eng.DetectJSONDuplicateKeysBytes(data, mode, maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

// DetectJSONDuplicateKeysReader is a thin wrapper that detects duplicate keys
// from an io.Reader.
func DetectJSONDuplicateKeysReader(r io.Reader, strict Strictness, maxIssues int) (Issues, error) {
	mode := toEngineDup(strict.OnDuplicateKey)
	si, err := eng.DetectJSONDuplicateKeysReader(r, mode, maxIssues)
	if err != nil {
		return nil, err
	}
	return fromEngineIssues(si), nil
}

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func fromEngineIssues(si []eng.SimpleIssue) Issues {
	var iss Issues
	for _, s := range si {
		it := Issue{Code: s.Code, Path: s.Path, Message: s.Message}
		if s.Key != "" {
			it.Params = map[string]any{"key": s.Key}
			it.Message = i18n.T(s.Code, map[string]string{"key": s.Key})
		}
		iss = AppendIssues(iss, it)
	}
	return iss
}
