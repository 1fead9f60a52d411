package cli

import (
	"context"
	"fmt"
)

// Stores re-reads the store list with the active filter and sort and prints
// it. When the read fails, the previously fetched rows are printed again so
// the user never loses what they were looking at.
func (a *App) Stores(ctx context.Context) error {
	err := a.browser.Refresh(ctx)
	if err != nil {
		report(err)
	}
	a.printStores()
	return err
}

// Filter narrows the store list on one field. An empty text clears the
// filter for that field. The list is re-read immediately.
func (a *App) Filter(ctx context.Context, field, substring string) error {
	err := a.browser.SetFilter(ctx, field, substring)
	if err != nil {
		report(err)
	}
	a.printStores()
	return err
}

// Sort orders the store list by the given field. Sorting by the current
// field again flips the direction; a new field starts ascending.
func (a *App) Sort(ctx context.Context, field string) error {
	err := a.browser.SortBy(ctx, field)
	if err != nil {
		report(err)
	}
	a.printStores()
	return err
}

// Rate submits a 1..5 rating for a store and re-reads the list, so the
// printed rows carry the server's updated average and the user's own value.
func (a *App) Rate(ctx context.Context, storeID int64, value int) error {
	if err := a.browser.Rate(ctx, storeID, value); err != nil {
		report(err)
		return err
	}
	printlnFn("Rating saved.")
	a.printStores()
	return nil
}

func (a *App) printStores() {
	q := a.browser.Query()
	header := fmt.Sprintf("Stores sorted by %s %s", q.Sort.Field, q.Sort.Direction)
	for field, substring := range q.Filters {
		header += fmt.Sprintf(", %s~%q", field, substring)
	}
	printlnFn(header)

	rows := a.browser.Results()
	if len(rows) == 0 {
		printlnFn("(no stores)")
		return
	}
	for _, s := range rows {
		printlnFn(renderStore(s))
	}
}
