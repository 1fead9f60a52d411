package cli

import (
	"context"
	"fmt"
)

// MyStore prints the id of the store owned by the signed-in user.
func (a *App) MyStore(ctx context.Context) error {
	id, err := a.owner.MyStore(ctx)
	if err != nil {
		report(err)
		return err
	}
	printlnFn("Your store id:", id)
	return nil
}

// Dashboard prints the feedback view of one store: the average rating and
// every individual rating with its author. With storeID 0 the owned store
// is looked up first. Admins may pass any store id.
func (a *App) Dashboard(ctx context.Context, storeID int64) error {
	if storeID == 0 {
		id, err := a.owner.MyStore(ctx)
		if err != nil {
			report(err)
			return err
		}
		storeID = id
	}

	d, err := a.owner.Dashboard(ctx, storeID)
	if err != nil {
		report(err)
		return err
	}

	printlnFn(fmt.Sprintf("Store #%d average rating: %.2f", storeID, d.Average))
	if len(d.Ratings) == 0 {
		printlnFn("(no ratings yet)")
		return nil
	}
	for _, r := range d.Ratings {
		rater := "unknown"
		if r.Rater != nil {
			rater = r.Rater.Name
		}
		printlnFn(fmt.Sprintf("  %d by %s", r.Value, rater))
	}
	return nil
}
