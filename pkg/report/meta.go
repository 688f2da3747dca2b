package report

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/plumstack/plum/pkg/types"
)

// ParseMetaINI extracts service endpoints from an instance's meta.ini.
//
// The grammar is line-oriented UTF-8; only lines of the form
//
//	service=<name>:<protocol>:<port>
//
// are meaningful. Blank lines, comments (# or ;) and malformed entries are
// skipped silently; other keys are reserved and ignored.
func ParseMetaINI(path string) ([]types.ServiceEndpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var endpoints []types.ServiceEndpoint
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		val, ok := strings.CutPrefix(line, "service=")
		if !ok {
			continue
		}
		parts := strings.Split(val, ":")
		if len(parts) != 3 {
			continue
		}
		port, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || port <= 0 || parts[0] == "" {
			continue
		}
		endpoints = append(endpoints, types.ServiceEndpoint{
			ServiceName: parts[0],
			Protocol:    parts[1],
			Port:        port,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return endpoints, nil
}
