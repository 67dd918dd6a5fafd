package favorites

import (
	"context"

	"github.com/taiwoajasa245/divine-answers/internal/notify"
)

var toastRemoved = notify.Toast{Title: "Removed", Description: "Favorite has been deleted"}

// View is the favorites screen: the persisted list, most recent first.
type View struct {
	service *FavoritesService
	notify  notify.Notifier
	items   []Favorite
}

func NewView(service *FavoritesService, n notify.Notifier) *View {
	if n == nil {
		n = notify.Discard
	}
	return &View{service: service, notify: n}
}

// Load reads the persisted list, as on mount.
func (v *View) Load(ctx context.Context) ([]Favorite, error) {
	items, err := v.service.List(ctx)
	if err != nil {
		return nil, err
	}
	v.items = items
	return items, nil
}

func (v *View) Items() []Favorite {
	return v.items
}

func (v *View) Delete(ctx context.Context, id int64) error {
	items, err := v.service.Delete(ctx, id)
	if err != nil {
		v.notify.Notify(notify.Toast{Title: "Error", Description: err.Error(), Destructive: true})
		return err
	}
	v.items = items
	v.notify.Notify(toastRemoved)
	return nil
}
