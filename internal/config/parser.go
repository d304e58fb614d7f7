// Package config locates and parses the user's ssh client config.
//
// Only flat Host blocks are understood. Within a block the HostName, User and
// Port directives are read; every other line is skipped. Matching is by exact,
// case-sensitive prefix including the single separating space, so "Host" on
// its own or "hostname x" are not recognised.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/treykane/ssh-picker/internal/apperr"
	"github.com/treykane/ssh-picker/internal/model"
	"github.com/treykane/ssh-picker/internal/util"
)

const (
	prefixHost     = "Host "
	prefixHostName = "HostName "
	prefixUser     = "User "
	prefixPort     = "Port "

	opParse = "parse ssh config"
)

type ParseResult struct {
	Hosts    []model.HostRecord
	Warnings []string
}

// ParseFile reads and parses the ssh config at path.
func ParseFile(path string) (ParseResult, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, apperr.New(apperr.Unreadable, "read ssh config", path, err)
	}
	return parse(string(b), path)
}

// Parse parses raw ssh config text. It fails only when no Host block is found
// or a line exceeds util.MaxConfigLineBytes.
func Parse(raw string) (ParseResult, error) {
	return parse(raw, "")
}

func parse(raw, source string) (ParseResult, error) {
	var (
		res     ParseResult
		current *model.HostRecord
	)
	flush := func() {
		if current != nil {
			res.Hosts = append(res.Hosts, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), util.MaxConfigLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, prefixHost); ok {
			flush()
			current = &model.HostRecord{Alias: strings.TrimSpace(rest)}
			continue
		}

		key, value, ok := cutAttribute(line)
		if !ok {
			continue
		}
		if current == nil {
			res.Warnings = append(res.Warnings, warnf(source, lineNo, "%s outside any Host block ignored", key))
			continue
		}
		switch key {
		case "HostName":
			current.HostName = value
		case "User":
			current.User = value
		case "Port":
			p, ok := util.ParsePort(value)
			if !ok {
				res.Warnings = append(res.Warnings, warnf(source, lineNo, "invalid Port %q for host %s ignored", value, current.Alias))
				continue
			}
			current.Port = &p
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("line %d: %w", lineNo+1, err)
		}
		return ParseResult{}, apperr.New(apperr.Unreadable, opParse, source, err)
	}
	flush()

	if len(res.Hosts) == 0 {
		return ParseResult{}, apperr.New(apperr.NoHostsDefined, opParse, source, nil)
	}
	return res, nil
}

// cutAttribute recognises the directives read inside a Host block.
func cutAttribute(line string) (key, value string, ok bool) {
	for _, prefix := range []string{prefixHostName, prefixUser, prefixPort} {
		if rest, found := strings.CutPrefix(line, prefix); found {
			return strings.TrimSuffix(prefix, " "), strings.TrimSpace(rest), true
		}
	}
	return "", "", false
}

func warnf(source string, lineNo int, format string, args ...any) string {
	msg := fmt.Sprintf(format, args...)
	if source == "" {
		return fmt.Sprintf("line %d: %s", lineNo, msg)
	}
	return fmt.Sprintf("%s:%d: %s", source, lineNo, msg)
}
