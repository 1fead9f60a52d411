package cli

import (
	"bufio"
	"context"
	"os"
)

// Root starts the interactive shell on stdin. The welcome line is printed
// after the session has been restored, so the prompt never shows a stale
// identity.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to StoreHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
