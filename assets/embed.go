// assets/embed.go
//
// Embedded default word lists, used when no word-list files are configured.
//   - solutions.txt: candidate solutions, most common first.
//   - guesses.txt:   extra allowed guesses (solutions are added on load).

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed solutions.txt guesses.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

func SolutionsList() ([]string, error) {
	return readLines("solutions.txt")
}

func GuessesList() ([]string, error) {
	return readLines("guesses.txt")
}
