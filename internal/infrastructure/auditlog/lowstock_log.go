// Package auditlog escribe el historial de reportes de stock bajo en un archivo de texto.
package auditlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventory-ledger/internal/domain/entity"
)

const timestampLayout = "2006-01-02 15:04:05.000000"

// LowStockLog agrega cada reporte de stock bajo al final del archivo. Nunca trunca.
type LowStockLog struct {
	fs   afero.Fs
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewLowStockLog crea el writer sobre fs (afero.NewOsFs en producción, MemMapFs en tests).
func NewLowStockLog(fs afero.Fs, path string) *LowStockLog {
	return &LowStockLog{fs: fs, path: path, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (l *LowStockLog) WithClock(now func() time.Time) *LowStockLog {
	l.now = now
	return l
}

// Path ruta del archivo de log.
func (l *LowStockLog) Path() string { return l.path }

// Append escribe un bloque con cabecera y una línea por producto, o "All items in stock." si no hay ninguno.
func (l *LowStockLog) Append(items []*entity.Product) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n--- Low Stock Report (%s) ---\n", l.now().Format(timestampLayout))
	if len(items) == 0 {
		b.WriteString("All items in stock.\n")
	}
	for _, p := range items {
		fmt.Fprintf(&b, "%s: %d left\n", p.Name, p.Quantity)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir log de stock bajo: %w", err)
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return fmt.Errorf("escribir log de stock bajo: %w", err)
	}
	return f.Close()
}
