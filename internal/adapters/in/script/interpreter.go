// Package script executes line-oriented command scripts against the order
// use cases. Each line is one command; a failing line is reported and
// skipped, so one bad line never aborts the remaining script.
//
// Grammar, fields separated by whitespace:
//
//	addOrder   <name> <productId> [<productId> ...]
//	setStatus  <name> <status>
//	printOrders
//
// Order names are script-scoped: the interpreter binds each name to the
// order created under it and resolves later setStatus lines through that
// binding. Bindings do not outlive a Run call.
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/metrics"
)

var (
	// ErrUnknownCommand is returned when the first token of a line is not a
	// known command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMalformedCommand is returned when a known command has the wrong
	// number of arguments.
	ErrMalformedCommand = errors.New("malformed command")
	// ErrInvalidStatus is returned when a setStatus line names an unknown
	// status.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrUnknownOrderName is returned when a setStatus line names an order
	// the script never created.
	ErrUnknownOrderName = errors.New("unknown order name")
	// ErrSourceUnavailable is returned when the script source cannot be
	// read at all. It is fatal to the whole run.
	ErrSourceUnavailable = errors.New("script source unavailable")
)

const (
	cmdAddOrder    = "addOrder"
	cmdSetStatus   = "setStatus"
	cmdPrintOrders = "printOrders"
)

// Diagnostic reports one failed script line.
type Diagnostic struct {
	LineNumber int
	Line       string
	Err        error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %q: %s", d.LineNumber, d.Line, d.Err)
}

// Interpreter drives the order use cases from a command script. Not safe
// for concurrent use; create one Interpreter per script run.
type Interpreter struct {
	placeOrder   commands.PlaceOrderCommandHandler
	changeStatus commands.ChangeOrderStatusCommandHandler
	out          io.Writer
	metrics      *metrics.ShopMetrics

	bindings map[string]*order.Order
}

// NewInterpreter creates an interpreter writing confirmations to out.
func NewInterpreter(
	placeOrder commands.PlaceOrderCommandHandler,
	changeStatus commands.ChangeOrderStatusCommandHandler,
	out io.Writer,
	shopMetrics *metrics.ShopMetrics,
) *Interpreter {
	return &Interpreter{
		placeOrder:   placeOrder,
		changeStatus: changeStatus,
		out:          out,
		metrics:      shopMetrics,
		bindings:     make(map[string]*order.Order),
	}
}

// RunFile executes the script stored at path. A missing or unreadable file
// fails the whole run with ErrSourceUnavailable before any line is
// processed.
func (i *Interpreter) RunFile(ctx context.Context, path string) ([]Diagnostic, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}
	defer file.Close()

	return i.Run(ctx, file)
}

// Run executes the script read from source, line by line. Failed lines are
// collected as diagnostics and do not stop the run. The returned error is
// non-nil only when the source itself cannot be read, in which case the
// run stops where reading failed.
func (i *Interpreter) Run(ctx context.Context, source io.Reader) ([]Diagnostic, error) {
	var diagnostics []Diagnostic

	scanner := bufio.NewScanner(source)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		if err := i.processLine(ctx, tokens); err != nil {
			diagnostics = append(diagnostics, Diagnostic{
				LineNumber: lineNumber,
				Line:       line,
				Err:        err,
			})
			i.countLine("error")
			continue
		}
		i.countLine("ok")
	}

	if err := scanner.Err(); err != nil {
		return diagnostics, fmt.Errorf("%w: %s", ErrSourceUnavailable, err)
	}

	return diagnostics, nil
}

func (i *Interpreter) processLine(ctx context.Context, tokens []string) error {
	switch tokens[0] {
	case cmdAddOrder:
		return i.handleAddOrder(ctx, tokens)
	case cmdSetStatus:
		return i.handleSetStatus(ctx, tokens)
	case cmdPrintOrders:
		// extra tokens are ignored
		return i.handlePrintOrders()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, tokens[0])
	}
}

func (i *Interpreter) handleAddOrder(ctx context.Context, tokens []string) error {
	if len(tokens) < 3 {
		return fmt.Errorf("%w: addOrder requires a name and at least one product id", ErrMalformedCommand)
	}

	name := tokens[1]
	productIDs := tokens[2:]

	cmd, err := commands.NewPlaceOrderCommand(productIDs)
	if err != nil {
		return err
	}

	placed, err := i.placeOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	i.bindings[name] = placed
	fmt.Fprintf(i.out, "Created order %s with %s\n", name, placed.ID())
	return nil
}

func (i *Interpreter) handleSetStatus(ctx context.Context, tokens []string) error {
	if len(tokens) != 3 {
		return fmt.Errorf("%w: setStatus requires a name and a status", ErrMalformedCommand)
	}

	name := tokens[1]
	status, err := order.StatusFromString(tokens[2])
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, tokens[2])
	}

	bound, ok := i.bindings[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOrderName, name)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(bound.ID(), status)
	if err != nil {
		return err
	}

	updated, err := i.changeStatus.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	i.bindings[name] = updated
	fmt.Fprintf(i.out, "Updated order %s to status %s\n", name, status)
	return nil
}

func (i *Interpreter) handlePrintOrders() error {
	names := make([]string, 0, len(i.bindings))
	for name := range i.bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(i.out, "All orders:")
	for _, name := range names {
		bound := i.bindings[name]
		fmt.Fprintf(i.out, "%s: %s %s\n", name, bound.ID(), bound.Status())
	}
	return nil
}

func (i *Interpreter) countLine(outcome string) {
	if i.metrics == nil {
		return
	}
	i.metrics.ScriptLines.WithLabelValues(outcome).Inc()
}
