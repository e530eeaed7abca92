// Package sink persists qualifying trades and renders them live.
package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/SanchitSharma10/TradingAlgos/internal/trade"
)

// Header matches the layout existing analysis notebooks expect. It names a
// First Trade ID column the aggTrade feed does not supply, so data rows carry
// seven fields; kept verbatim so old and new files stay concatenable.
const Header = "Event Time, Symbol, Aggregate Trade ID, Price, Quantity, First Trade ID, Trade Time, Is Buyer Maker\n"

// Recorder appends trades to a flat CSV file for later analysis.
type Recorder struct {
	mu   sync.Mutex
	file *os.File
}

// NewRecorder opens path in append mode, writing the header first only when
// the file does not already exist.
func NewRecorder(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	_, statErr := os.Stat(path)
	fresh := os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	if fresh {
		if _, err := file.WriteString(Header); err != nil {
			file.Close()
			return nil, err
		}
	}
	return &Recorder{file: file}, nil
}

// Append writes one trade as a comma-separated row. Price and quantity are
// written as their exact wire strings so a re-parse reconstructs the trade.
func (r *Recorder) Append(ev trade.Event) error {
	row := strings.Join([]string{
		strconv.FormatInt(ev.EventTime, 10),
		ev.Symbol,
		strconv.FormatInt(ev.TradeID, 10),
		ev.Price.String(),
		ev.Quantity.String(),
		strconv.FormatInt(ev.TradeTime, 10),
		strconv.FormatBool(ev.IsBuyerMaker),
	}, ",") + "\n"

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return fmt.Errorf("recorder closed")
	}
	_, err := r.file.WriteString(row)
	return err
}

// Close flushes and closes the file handle.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
