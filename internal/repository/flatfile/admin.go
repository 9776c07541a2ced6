package flatfile

import (
	"context"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
)

// Admin accounts use whitespace-delimited pairs rather than the pipe
// delimiter. The account file predates the pipe format and keeps its
// layout so existing files stay readable.
type adminRepository struct {
	store      *Store
	collection string
}

func NewAdminRepository(store *Store, collection string) repository.AdminRepository {
	return &adminRepository{store: store, collection: collection}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.store.AppendSpaced(r.collection, []string{admin.ID, admin.Password})
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	records, err := r.store.LoadSpaced(r.collection)
	if err != nil {
		return nil, err
	}
	for _, fields := range records {
		if len(fields) < 2 {
			continue
		}
		if fields[0] == id {
			return &model.Admin{ID: fields[0], Password: fields[1]}, nil
		}
	}
	return nil, nil
}
