// Package domainlist reads the bundled newline delimited list of disposable domains.
package domainlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Parse returns the trimmed, non-empty lines of r in order of first appearance.
func Parse(r io.Reader) ([]string, error) {
	var (
		domains []string
		seen    = make(map[string]struct{})
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		d := strings.TrimSpace(scanner.Text())
		if d == "" {
			continue
		}

		if _, ok := seen[d]; ok {
			continue
		}

		seen[d] = struct{}{}
		domains = append(domains, d)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read domain list")
	}

	return domains, nil
}

// Read parses the list at path. A missing file is reported with an error matching os.ErrNotExist.
func Read(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, errors.Wrap(err, "failed to open domain list")
	}
	defer f.Close()

	return Parse(f)
}

// Contains reports whether one trimmed line of the list at path equals domain.
func Contains(path, domain string) (bool, error) {
	if domain == "" {
		return false, nil
	}

	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return false, errors.Wrap(err, "failed to open domain list")
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == domain {
			return true, nil
		}
	}

	if err = scanner.Err(); err != nil {
		return false, errors.Wrap(err, "failed to read domain list")
	}

	return false, nil
}
