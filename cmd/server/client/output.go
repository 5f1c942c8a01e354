package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/champion-grid/internal/errors"
)

const cellWidth = 26

// requestContext returns a context bounded by the --timeout flag
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// callError turns a gRPC failure into a readable error, keeping any name
// suggestion the server attached
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	msg := errors.GetMessage(converted)
	if suggestion, ok := errors.GetMeta(converted)["suggestion"].(string); ok {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
	}
	return fmt.Errorf("failed to %s: %s [%s]", action, msg, errors.GetCode(converted))
}

func printJSON(w io.Writer, msg *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func str(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func num(m map[string]interface{}, key string) float64 {
	n, _ := m[key].(float64)
	return n
}

func list(m map[string]interface{}, key string) []interface{} {
	l, _ := m[key].([]interface{})
	return l
}

func strList(values []interface{}) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func pad(s string) string {
	if len(s) > cellWidth-1 {
		s = s[:cellWidth-2] + "~"
	}
	return s + strings.Repeat(" ", cellWidth-len(s))
}

func axisNames(axis []interface{}) []string {
	names := make([]string, 0, len(axis))
	for _, a := range axis {
		if m, ok := a.(map[string]interface{}); ok {
			names = append(names, str(m, "name"))
		}
	}
	return names
}

// printBoard renders a game response as a table of cells
func printBoard(w io.Writer, game map[string]interface{}) {
	categories, _ := game["categories"].(map[string]interface{})
	columns := axisNames(list(categories, "x_axis"))
	rows := axisNames(list(categories, "y_axis"))

	fmt.Fprintf(w, "Game %s  (difficulty %.2f, %s)\n", str(game, "id"), num(game, "difficulty"), str(game, "outcome"))
	fmt.Fprintf(w, "Score %d  Guesses remaining %d", int(num(game, "score")), int(num(game, "guesses_remaining")))
	if over, _ := game["is_game_over"].(bool); over {
		fmt.Fprint(w, "  GAME OVER")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprint(w, pad(""))
	for _, c := range columns {
		fmt.Fprint(w, pad(c))
	}
	fmt.Fprintln(w)

	for r, row := range list(game, "grid") {
		name := ""
		if r < len(rows) {
			name = rows[r]
		}
		fmt.Fprint(w, pad(name))
		cells, _ := row.([]interface{})
		for _, c := range cells {
			cell, _ := c.(map[string]interface{})
			fmt.Fprint(w, pad(cellLabel(cell)))
		}
		fmt.Fprintln(w)
	}
}

func cellLabel(cell map[string]interface{}) string {
	guess := str(cell, "guessed_champion")
	if guess == "" {
		if answers := strList(list(cell, "correct_champions")); len(answers) > 0 {
			return fmt.Sprintf("(%d answers)", len(answers))
		}
		return "?"
	}
	if correct, _ := cell["is_correct"].(bool); correct {
		return "[x] " + guess
	}
	return "[ ] " + guess
}

// printSolutions renders a generated grid with the answers of every cell
func printSolutions(w io.Writer, result map[string]interface{}) {
	fmt.Fprintf(w, "Outcome %s after %d attempts  (difficulty %.2f, target %.2f)\n\n",
		str(result, "outcome"), int(num(result, "attempts")), num(result, "difficulty"), num(result, "target"))

	rows := strList(list(result, "rows"))
	columns := strList(list(result, "columns"))
	for r, row := range list(result, "solutions") {
		cells, _ := row.([]interface{})
		for c, cell := range cells {
			answers, _ := cell.([]interface{})
			if r < len(rows) && c < len(columns) {
				fmt.Fprintf(w, "%s x %s: %s\n", rows[r], columns[c], strings.Join(strList(answers), ", "))
			}
		}
	}
}
