package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/daylog/internal/backup"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/storage/sqlite"
)

type Context struct {
	Store   storage.Provider
	Journal *journal.Service

	// ServerConfig is the --server-config path used by `serve`.
	ServerConfig string

	Stdout io.Writer
	Stdin  io.Reader
}

// NewContext wires a journal service on top of store.
func NewContext(store storage.Provider) *Context {
	return &Context{Store: store, Journal: journal.New(store, nil)}
}

// Out is where commands print. Defaults to os.Stdout.
func (c *Context) Out() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Context) In() io.Reader {
	if c.Stdin == nil {
		return os.Stdin
	}
	return c.Stdin
}

// Printf writes to Out.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out(), format, args...)
}

// Print writes to Out.
func (c *Context) Print(args ...interface{}) {
	fmt.Fprint(c.Out(), args...)
}

// Println writes to Out.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.Out(), args...)
}

// PrintJSON writes v as indented JSON.
func (c *Context) PrintJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	c.Println(string(b))
	return nil
}

// Confirm asks a yes/no question on In. Anything but y/yes is a no.
func (c *Context) Confirm(prompt string) (bool, error) {
	c.Printf("%s [y/N]: ", prompt)
	response, err := bufio.NewReader(c.In()).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// SQLiteStore returns the store when it is file backed by SQLite.
func (c *Context) SQLiteStore() (*sqlite.Store, bool) {
	s, ok := c.Store.(*sqlite.Store)
	return s, ok
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only SQLite stores are backed up.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.SQLiteStore(); !ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}
