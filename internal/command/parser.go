// Package command parses and runs kitchen scripts: one operation per line,
// applied to a station registry.
//
//	# comments and blank lines are ignored
//	add "Pastry Station"
//	assign "Grill Station" "Grilled Chicken Sandwich"
//	stock "Grill Station" Tomato 30 0.5
//	front "Dessert Station"
//	merge "Grill Station" "Prep Station"
//	can "Grilled Chicken Sandwich"
//	prepare "Grill Station" "Grilled Chicken Sandwich"
//	remove "Dessert Station"
package command

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/hammamikhairi/brigade/internal/domain"
	"github.com/hammamikhairi/brigade/internal/logger"
)

// Op identifies a script operation.
type Op int

const (
	OpUnknown Op = iota
	OpAdd
	OpRemove
	OpFront
	OpMerge
	OpAssign
	OpStock
	OpCan
	OpPrepare
	OpList
)

// String returns the script keyword for the op.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpRemove:
		return "remove"
	case OpFront:
		return "front"
	case OpMerge:
		return "merge"
	case OpAssign:
		return "assign"
	case OpStock:
		return "stock"
	case OpCan:
		return "can"
	case OpPrepare:
		return "prepare"
	case OpList:
		return "list"
	default:
		return "unknown"
	}
}

// Command is one parsed script line.
type Command struct {
	Op   Op
	Args []string
	// Ingredient is set for OpStock.
	Ingredient domain.Ingredient
	Line       int
}

// String renders the command back in script form.
func (c Command) String() string {
	parts := []string{c.Op.String()}
	for _, a := range c.Args {
		parts = append(parts, strconv.Quote(a))
	}
	if c.Op == OpStock {
		parts = append(parts,
			strconv.FormatFloat(c.Ingredient.Quantity, 'g', -1, 64),
			strconv.FormatFloat(c.Ingredient.Price, 'g', -1, 64))
	}
	return strings.Join(parts, " ")
}

type opRule struct {
	regex *regexp.Regexp
	op    Op
	arity int
}

// Parser turns script lines into commands.
type Parser struct {
	log   *logger.Logger
	rules []opRule
}

// tokenRe matches a double-quoted argument or a bare word.
var tokenRe = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"|(\S+)`)

// NewParser creates a script parser.
func NewParser(log *logger.Logger) *Parser {
	p := &Parser{log: log.Named("command")}
	p.rules = []opRule{
		{regexp.MustCompile(`(?i)^(add|open)$`), OpAdd, 1},
		{regexp.MustCompile(`(?i)^(remove|close|rm)$`), OpRemove, 1},
		{regexp.MustCompile(`(?i)^(front|promote)$`), OpFront, 1},
		{regexp.MustCompile(`(?i)^merge$`), OpMerge, 2},
		{regexp.MustCompile(`(?i)^assign$`), OpAssign, 2},
		{regexp.MustCompile(`(?i)^(stock|replenish)$`), OpStock, 3},
		{regexp.MustCompile(`(?i)^(can|fulfill)$`), OpCan, 1},
		{regexp.MustCompile(`(?i)^(prepare|cook)$`), OpPrepare, 2},
		{regexp.MustCompile(`(?i)^(list|stations|ls)$`), OpList, 0},
	}
	return p
}

// Parse converts a single line into a command. Blank lines and comments
// yield ok == false with no error.
func (p *Parser) Parse(line string) (cmd Command, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return Command{}, false, nil
	}

	tokens, err := tokenize(trimmed)
	if err != nil {
		return Command{}, false, err
	}
	p.log.Debug("parsing line: %q", trimmed)

	keyword, args := tokens[0], tokens[1:]
	for _, rule := range p.rules {
		if !rule.regex.MatchString(keyword) {
			continue
		}
		return p.build(rule, args)
	}
	return Command{}, false, fmt.Errorf("%q: %w", keyword, domain.ErrUnknownCommand)
}

func (p *Parser) build(rule opRule, args []string) (Command, bool, error) {
	if rule.op == OpStock {
		// stock <station> <ingredient> <quantity> [price]
		if len(args) != 3 && len(args) != 4 {
			return Command{}, false, fmt.Errorf("%s takes 3 or 4 arguments, got %d: %w", rule.op, len(args), domain.ErrInvalidArgument)
		}
		qty, err := parseNumber(args[2])
		if err != nil {
			return Command{}, false, err
		}
		price := 0.0
		if len(args) == 4 {
			if price, err = parseNumber(args[3]); err != nil {
				return Command{}, false, err
			}
		}
		return Command{
			Op:         OpStock,
			Args:       args[:2],
			Ingredient: domain.NewIngredient(args[1], qty, 0, price),
		}, true, nil
	}

	if len(args) != rule.arity {
		return Command{}, false, fmt.Errorf("%s takes %d arguments, got %d: %w", rule.op, rule.arity, len(args), domain.ErrInvalidArgument)
	}
	p.log.Debug("matched op: %s", rule.op)
	return Command{Op: rule.op, Args: args}, true, nil
}

func tokenize(s string) ([]string, error) {
	quotes := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			quotes++
		}
	}
	if quotes%2 != 0 {
		return nil, fmt.Errorf("unterminated quote in %q: %w", s, domain.ErrInvalidArgument)
	}

	var out []string
	for _, m := range tokenRe.FindAllStringSubmatch(s, -1) {
		if m[2] != "" {
			out = append(out, m[2])
			continue
		}
		out = append(out, strings.ReplaceAll(m[1], `\"`, `"`))
	}
	return out, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, domain.ErrInvalidArgument)
	}
	if v < 0 {
		return 0, fmt.Errorf("%q is negative: %w", s, domain.ErrInvalidArgument)
	}
	return v, nil
}
