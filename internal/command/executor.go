package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
	"github.com/hammamikhairi/brigade/internal/registry"
	"github.com/hammamikhairi/brigade/internal/station"
)

// Result is the outcome of one command. OK mirrors the boolean returned by
// the registry operation.
type Result struct {
	Command Command
	OK      bool
	Detail  string
}

// DishLookup resolves dish names for assign commands.
type DishLookup interface {
	FindByName(ctx context.Context, name string) (*domain.Dish, error)
}

// Executor applies commands to a registry.
type Executor struct {
	reg    *registry.Registry
	dishes DishLookup
	parser *Parser
	root   *logger.Logger // handed to new stations
	log    *logger.Logger
}

// NewExecutor creates an executor. dishes resolves the dish named by assign.
func NewExecutor(reg *registry.Registry, dishes DishLookup, log *logger.Logger) *Executor {
	return &Executor{
		reg:    reg,
		dishes: dishes,
		parser: NewParser(log),
		root:   log,
		log:    log.Named("executor"),
	}
}

// Execute applies a single command.
func (e *Executor) Execute(ctx context.Context, cmd Command) Result {
	res := Result{Command: cmd}

	switch cmd.Op {
	case OpAdd:
		res.OK = e.reg.AddStation(station.New(cmd.Args[0], e.root))
		res.Detail = fmt.Sprintf("%d stations", e.reg.Len())
	case OpRemove:
		res.OK = e.reg.RemoveStation(cmd.Args[0])
		if !res.OK {
			res.Detail = "no such station"
		}
	case OpFront:
		res.OK = e.reg.MoveStationToFront(cmd.Args[0])
		res.Detail = strings.Join(e.reg.Names(), ", ")
	case OpMerge:
		res.OK = e.reg.MergeStations(cmd.Args[0], cmd.Args[1])
		if !res.OK {
			res.Detail = "both stations must exist and differ"
		}
	case OpAssign:
		dish, err := e.dishes.FindByName(ctx, cmd.Args[1])
		if err != nil {
			res.Detail = err.Error()
			break
		}
		res.OK = e.reg.AssignDishAt(cmd.Args[0], dish)
		if !res.OK {
			res.Detail = "no such station or dish already assigned"
		}
	case OpStock:
		res.OK = e.reg.ReplenishAt(cmd.Args[0], cmd.Ingredient)
		if res.OK {
			if ing, ok := e.reg.FindStation(cmd.Args[0]).StockOf(cmd.Ingredient.Name); ok {
				res.Detail = fmt.Sprintf("%s now %g", ing.Name, ing.Quantity)
			}
		} else {
			res.Detail = "no such station"
		}
	case OpCan:
		res.OK = e.reg.CanFulfillAnywhere(cmd.Args[0])
		if res.OK {
			res.Detail = "at " + strings.Join(e.reg.FulfillingStations(cmd.Args[0]), ", ")
		}
	case OpPrepare:
		res.OK = e.reg.PrepareAt(cmd.Args[0], cmd.Args[1])
		if !res.OK {
			res.Detail = "station missing, dish not assigned, or stock too low"
		}
	case OpList:
		res.OK = true
		res.Detail = strings.Join(e.reg.Names(), ", ")
	default:
		res.Detail = domain.ErrUnknownCommand.Error()
	}

	e.log.Debug("line %d: %s -> %v", cmd.Line, cmd, res.OK)
	return res
}

// Run parses and executes every line of r. A failed operation does not stop
// the script; a parse error does, and the results so far are returned with it.
func (e *Executor) Run(ctx context.Context, r io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return results, err
		}

		cmd, ok, err := e.parser.Parse(scanner.Text())
		if err != nil {
			return results, fmt.Errorf("line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		cmd.Line = line
		results = append(results, e.Execute(ctx, cmd))
	}
	if err := scanner.Err(); err != nil {
		return results, fmt.Errorf("reading script: %w", err)
	}
	return results, nil
}
