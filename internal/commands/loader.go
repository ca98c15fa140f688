package commands

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/codexplus/ext/internal/logging"
	"github.com/codexplus/ext/internal/paths"
)

// LoadDir scans dir (a scope's commands/ directory) recursively and
// returns the commands it defines. A missing directory yields no commands
// and no error. Files are processed in lexicographic path order so that
// duplicate-name resolution within the scope is deterministic.
func LoadDir(fs afero.Fs, dir string, scope paths.Scope) ([]Command, error) {
	exists, err := afero.DirExists(fs, dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	var files []string
	err = afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)

	seen := make(map[string]bool)
	commands := make([]Command, 0, len(files))
	for _, path := range files {
		content, err := afero.ReadFile(fs, path)
		if err != nil {
			logging.Logger.Warn().Str("path", path).Err(err).Msg("skipping unreadable command file")
			continue
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		defaultName := namespaceName(rel)

		cmd, err := parseCommand(string(content), path, defaultName, scope)
		if err != nil {
			logging.Logger.Warn().Str("path", path).Err(err).Msg("skipping malformed command file")
			continue
		}
		if !NameRegexp.MatchString(cmd.Name) {
			logging.Logger.Warn().Str("path", path).Str("name", cmd.Name).
				Msg("skipping command with invalid name")
			continue
		}
		if seen[cmd.Name] {
			logging.Logger.Warn().Str("path", path).Str("name", cmd.Name).
				Msg("duplicate command name in scope, keeping first-loaded")
			continue
		}
		seen[cmd.Name] = true
		commands = append(commands, cmd)
	}
	return commands, nil
}

// namespaceName derives a command's default name from its path relative to
// commands/: directory separators become ':' and the .md suffix is
// stripped, so commands/git/commit.md -> "git:commit".
func namespaceName(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return strings.ReplaceAll(rel, "/", ":")
}

type frontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// parseCommand splits an optional "---" delimited header from the body.
// A header is only recognized when the file's very first line is exactly
// "---"; anything else means the whole file is body text.
func parseCommand(content, path, defaultName string, scope paths.Scope) (Command, error) {
	header, body, err := extractFrontmatter(content)
	if err != nil {
		return Command{}, err
	}

	name := defaultName
	description := ""
	if header != "" {
		var fm frontmatter
		if err := yaml.Unmarshal([]byte(header), &fm); err != nil {
			return Command{}, err
		}
		if fm.Name != "" {
			name = fm.Name
		}
		description = fm.Description
	}

	return Command{
		Name:        name,
		Description: description,
		Body:        body,
		Scope:       scope,
		Path:        path,
	}, nil
}

func extractFrontmatter(content string) (header, body string, err error) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return "", "", err
	}

	if len(lines) == 0 || lines[0] != "---" {
		return "", content, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		// Unterminated header: tolerantly treat the whole file as body.
		return "", content, nil
	}

	header = strings.Join(lines[1:closing], "\n")
	body = strings.Join(lines[closing+1:], "\n")
	return header, body, nil
}
