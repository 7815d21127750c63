package diag

import "kdc/internal/source"

// Reporter — минимальный контракт получения диагностик от фаз.
// Реализация: *Emitter (фазы репортят прямо в него через адаптеры в
// adapters.go).
type Reporter interface {
	Report(code Code, sev Severity, primary source.Span, msg string, notes []Note)
}
