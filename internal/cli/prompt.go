package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func (c *CLI) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(c.in.Text(), "\r"), nil
}

func (c *CLI) promptLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.readLine()
}

// promptNonEmpty re-prompts until the operator enters something.
func (c *CLI) promptNonEmpty(prompt string) (string, error) {
	for {
		value, err := c.promptLine(prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(value) != "" {
			return value, nil
		}
		fmt.Fprintln(c.out, "  [!] This field must not be empty.")
	}
}

// promptInt re-prompts until the input parses as an integer.
func (c *CLI) promptInt(prompt string) (int, error) {
	for {
		value, err := c.promptLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			fmt.Fprintln(c.out, "  [!] Invalid input. Please enter a number.")
			continue
		}
		return n, nil
	}
}

// promptIntIn re-prompts until the integer satisfies valid.
func (c *CLI) promptIntIn(prompt, complaint string, valid func(int) bool) (int, error) {
	for {
		n, err := c.promptInt(prompt)
		if err != nil {
			return 0, err
		}
		if valid(n) {
			return n, nil
		}
		fmt.Fprintln(c.out, complaint)
	}
}
