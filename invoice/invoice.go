package invoice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"smart-table-api/models"
)

// Generator renders a human-readable receipt for a completed order and
// returns where it was written. Implementations are pure functions of
// the order record; the store invokes one exactly once per completion.
type Generator interface {
	Generate(order *models.Order) (string, error)
}

// FileGenerator writes plain-text receipts into a directory. Richer
// renderers (PDF and the like) live outside the core and consume the
// same order record.
type FileGenerator struct {
	dir string
}

func NewFileGenerator(dir string) *FileGenerator {
	return &FileGenerator{dir: dir}
}

func (g *FileGenerator) Generate(order *models.Order) (string, error) {
	if err := os.MkdirAll(g.dir, 0o755); err != nil {
		return "", fmt.Errorf("create invoice directory: %w", err)
	}

	name := fmt.Sprintf("invoice_table_%s_%s.txt", order.Table, uuid.NewString())
	path := filepath.Join(g.dir, name)

	var b strings.Builder
	fmt.Fprintln(&b, "Smart Table Invoice")
	fmt.Fprintln(&b, "===================")
	fmt.Fprintf(&b, "Table: %s\n", order.Table)
	fmt.Fprintf(&b, "Date:  %s\n", order.CreatedAt.Format("02-01-2006 15:04:05"))
	fmt.Fprintln(&b)
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%s x %d = %s\n", item.Name, item.Quantity, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Total: %s\n", order.Total.StringFixed(2))
	payment := string(order.Payment)
	if payment == "" {
		payment = "N/A"
	}
	fmt.Fprintf(&b, "Payment Method: %s\n", payment)

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write invoice: %w", err)
	}
	return path, nil
}
