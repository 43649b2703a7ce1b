package sams

import (
	"bufio"
	"os"
	"strings"

	"github.com/KuechlerO/simple-sams-api/internal/app/contracts"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/dto/requests"
	"github.com/KuechlerO/simple-sams-api/internal/pkg/exceptions"
)

type staticCredentials struct {
	username string
	password string
}

// StaticCredentials wraps a literal username/password pair.
func StaticCredentials(username, password string) contracts.CredentialsProvider {
	return &staticCredentials{username: username, password: password}
}

func (p *staticCredentials) Credentials() (*requests.Login, error) {
	return &requests.Login{
		Email:    p.username,
		Password: p.password,
	}, nil
}

type fileCredentials struct {
	path string
}

// CredentialsFromFile reads credentials from a plain-text file: line 1 is
// the username, line 2 the password, both trimmed of surrounding
// whitespace. The file is read on every Credentials call, never cached.
func CredentialsFromFile(path string) contracts.CredentialsProvider {
	return &fileCredentials{path: path}
}

func (p *fileCredentials) Credentials() (*requests.Login, error) {
	file, err := os.Open(p.path)
	if err != nil {
		return nil, exceptions.ErrCredentialsFileRead(err, p.path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() && len(lines) < 2 {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, exceptions.ErrCredentialsFileRead(err, p.path)
	}
	if len(lines) < 2 {
		return nil, exceptions.ErrCredentialsFileFormat(p.path)
	}

	return &requests.Login{
		Email:    strings.TrimSpace(lines[0]),
		Password: strings.TrimSpace(lines[1]),
	}, nil
}
