package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/belleza-api/internal/domain"
	"github.com/jhoicas/belleza-api/internal/domain/entity"
	"github.com/jhoicas/belleza-api/internal/domain/repository"
)

// ── usuarios ──────────────────────────────────────────────────────────────────

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.st.users {
		if o.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
		if u.Role == entity.RoleAdminPrincipal && o.Role == entity.RoleAdminPrincipal {
			return fmt.Errorf("%w: usuarios_unico_admin_principal", domain.ErrDuplicate)
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = r.s.tick()
	}
	r.s.st.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.st.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r userRepo) List(_ context.Context, role entity.Role, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.User, 0, len(r.s.st.users))
	for _, u := range r.s.st.users {
		if role != "" && u.Role != role {
			continue
		}
		u := u
		list = append(list, &u)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r userRepo) SetActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.st.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Active = active
	r.s.st.users[id] = u
	return nil
}

func (r userRepo) ExistsWithRole(_ context.Context, role entity.Role) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.st.users {
		if u.Role == role {
			return true, nil
		}
	}
	return false, nil
}

// ── spas ──────────────────────────────────────────────────────────────────────

type spaRepo struct{ s *Store }

// checkSpa emula spas_nombre_activo_key y spas_admin_spa_id_key.
func (r spaRepo) checkSpa(spa *entity.Spa) error {
	for _, o := range r.s.st.spas {
		if o.ID == spa.ID {
			continue
		}
		if spa.Active && o.Active && fold(o.Name) == fold(spa.Name) {
			return fmt.Errorf("%w: ya existe un spa activo con ese nombre", domain.ErrDuplicate)
		}
		if spa.AdminSpaID != nil && o.AdminSpaID != nil && *o.AdminSpaID == *spa.AdminSpaID {
			return fmt.Errorf("%w: el admin_spa ya administra otro spa", domain.ErrConflict)
		}
	}
	return nil
}

func (r spaRepo) Create(_ context.Context, spa *entity.Spa) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.checkSpa(spa); err != nil {
		return err
	}
	r.s.st.spas[spa.ID] = *spa
	return nil
}

func (r spaRepo) GetByID(_ context.Context, id string) (*entity.Spa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if s, ok := r.s.st.spas[id]; ok {
		return &s, nil
	}
	return nil, nil
}

// GetByIDForUpdate las transacciones del store ya están serializadas.
func (r spaRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Spa, error) {
	return r.GetByID(ctx, id)
}

func (r spaRepo) GetActiveByName(_ context.Context, name string) (*entity.Spa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.st.spas {
		if s.Active && fold(s.Name) == fold(name) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r spaRepo) GetByAdminSpa(_ context.Context, adminSpaID string) (*entity.Spa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.st.spas {
		if s.IsOwnedBy(adminSpaID) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r spaRepo) List(_ context.Context, f repository.SpaFilter) ([]*entity.Spa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Spa
	for _, s := range r.s.st.spas {
		s := s
		if f.IncludeInactive || s.Active || (f.OwnerID != "" && s.IsOwnedBy(f.OwnerID)) {
			list = append(list, &s)
		}
	}
	sortByName(list, func(s *entity.Spa) string { return s.Name })
	return list, nil
}

func (r spaRepo) Update(_ context.Context, spa *entity.Spa) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.spas[spa.ID]
	if !ok {
		return fmt.Errorf("%w: spa %s", domain.ErrNotFound, spa.ID)
	}
	cur.Name, cur.Address, cur.Zone, cur.Schedule = spa.Name, spa.Address, spa.Zone, spa.Schedule
	cur.AdminSpaID, cur.LastUpdated = spa.AdminSpaID, spa.LastUpdated
	if err := r.checkSpa(&cur); err != nil {
		return err
	}
	r.s.st.spas[spa.ID] = cur
	return nil
}

func (r spaRepo) SetActive(_ context.Context, id string, active bool, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.spas[id]
	if !ok {
		return fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	cur.Active, cur.LastUpdated = active, at
	if err := r.checkSpa(&cur); err != nil {
		return err
	}
	r.s.st.spas[id] = cur
	return nil
}

func (r spaRepo) UpdateAverageRating(_ context.Context, id string, avg float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.spas[id]
	if !ok {
		return fmt.Errorf("%w: spa %s", domain.ErrNotFound, id)
	}
	cur.AverageRating = avg
	r.s.st.spas[id] = cur
	return nil
}

// ── servicios y materiales ────────────────────────────────────────────────────

type serviceRepo struct{ s *Store }

func (r serviceRepo) nameTaken(name, selfID string) bool {
	for _, o := range r.s.st.services {
		if o.ID != selfID && fold(o.Name) == fold(name) {
			return true
		}
	}
	return false
}

func (r serviceRepo) Create(_ context.Context, svc *entity.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(svc.Name, svc.ID) {
		return fmt.Errorf("%w: ya existe un servicio con ese nombre", domain.ErrDuplicate)
	}
	r.s.st.services[svc.ID] = *svc
	return nil
}

func (r serviceRepo) GetByID(_ context.Context, id string) (*entity.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.st.services[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r serviceRepo) GetByName(_ context.Context, name string) (*entity.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.st.services {
		if fold(v.Name) == fold(name) {
			return &v, nil
		}
	}
	return nil, nil
}

func (r serviceRepo) List(_ context.Context, includeInactive bool) ([]*entity.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Service
	for _, v := range r.s.st.services {
		v := v
		if includeInactive || v.Active {
			list = append(list, &v)
		}
	}
	sortByName(list, func(v *entity.Service) string { return v.Name })
	return list, nil
}

func (r serviceRepo) Update(_ context.Context, svc *entity.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.services[svc.ID]
	if !ok {
		return fmt.Errorf("%w: servicio %s", domain.ErrNotFound, svc.ID)
	}
	if r.nameTaken(svc.Name, svc.ID) {
		return fmt.Errorf("%w: ya existe un servicio con ese nombre", domain.ErrDuplicate)
	}
	cur.Name, cur.Description, cur.RefDuration, cur.RefPrice = svc.Name, svc.Description, svc.RefDuration, svc.RefPrice
	r.s.st.services[svc.ID] = cur
	return nil
}

func (r serviceRepo) SetActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.services[id]
	if !ok {
		return fmt.Errorf("%w: servicio %s", domain.ErrNotFound, id)
	}
	cur.Active = active
	r.s.st.services[id] = cur
	return nil
}

type materialRepo struct{ s *Store }

func (r materialRepo) nameTaken(name, selfID string) bool {
	for _, o := range r.s.st.materials {
		if o.ID != selfID && fold(o.Name) == fold(name) {
			return true
		}
	}
	return false
}

func (r materialRepo) Create(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.nameTaken(m.Name, m.ID) {
		return fmt.Errorf("%w: ya existe un material con ese nombre", domain.ErrDuplicate)
	}
	r.s.st.materials[m.ID] = *m
	return nil
}

func (r materialRepo) GetByID(_ context.Context, id string) (*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.st.materials[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r materialRepo) GetByName(_ context.Context, name string) (*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, v := range r.s.st.materials {
		if fold(v.Name) == fold(name) {
			return &v, nil
		}
	}
	return nil, nil
}

func (r materialRepo) List(_ context.Context, includeInactive bool) ([]*entity.Material, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Material
	for _, v := range r.s.st.materials {
		v := v
		if includeInactive || v.Active {
			list = append(list, &v)
		}
	}
	sortByName(list, func(v *entity.Material) string { return v.Name })
	return list, nil
}

func (r materialRepo) Update(_ context.Context, m *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.materials[m.ID]
	if !ok {
		return fmt.Errorf("%w: material %s", domain.ErrNotFound, m.ID)
	}
	if r.nameTaken(m.Name, m.ID) {
		return fmt.Errorf("%w: ya existe un material con ese nombre", domain.ErrDuplicate)
	}
	cur.Name, cur.Type = m.Name, m.Type
	r.s.st.materials[m.ID] = cur
	return nil
}

func (r materialRepo) SetActive(_ context.Context, id string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.materials[id]
	if !ok {
		return fmt.Errorf("%w: material %s", domain.ErrNotFound, id)
	}
	cur.Active = active
	r.s.st.materials[id] = cur
	return nil
}

// ── asociaciones ──────────────────────────────────────────────────────────────

type spaServiceRepo struct{ s *Store }

func (r spaServiceRepo) Get(_ context.Context, spaID, serviceID string) (*entity.SpaService, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.st.spaServices[pair{spaID, serviceID}]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r spaServiceRepo) Create(_ context.Context, a *entity.SpaService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := pair{a.SpaID, a.ServiceID}
	if _, ok := r.s.st.spaServices[k]; ok {
		return fmt.Errorf("%w: el servicio ya está asociado a este spa", domain.ErrConflict)
	}
	r.s.st.spaServices[k] = *a
	return nil
}

func (r spaServiceRepo) Update(_ context.Context, a *entity.SpaService) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := pair{a.SpaID, a.ServiceID}
	if _, ok := r.s.st.spaServices[k]; !ok {
		return fmt.Errorf("%w: asociación spa-servicio", domain.ErrNotFound)
	}
	r.s.st.spaServices[k] = *a
	return nil
}

func (r spaServiceRepo) DeactivateByService(_ context.Context, serviceID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, v := range r.s.st.spaServices {
		if v.ServiceID == serviceID {
			v.Active = false
			r.s.st.spaServices[k] = v
		}
	}
	return nil
}

func (r spaServiceRepo) ListBySpa(_ context.Context, spaID string) ([]repository.SpaServiceDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.SpaServiceDetail
	for _, a := range r.s.st.spaServices {
		svc, ok := r.s.st.services[a.ServiceID]
		if a.SpaID != spaID || !a.Active || !ok || !svc.Active {
			continue
		}
		d := repository.SpaServiceDetail{
			SpaID: a.SpaID, ServiceID: svc.ID, Name: svc.Name, Description: svc.Description,
			Price: a.Price, Duration: a.Duration,
		}
		if d.Price == nil {
			d.Price = svc.RefPrice
		}
		if d.Duration == "" {
			d.Duration = svc.RefDuration
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type spaMaterialRepo struct{ s *Store }

func (r spaMaterialRepo) Get(_ context.Context, spaID, materialID string) (*entity.SpaMaterial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.st.spaMaterials[pair{spaID, materialID}]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r spaMaterialRepo) Create(_ context.Context, a *entity.SpaMaterial) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := pair{a.SpaID, a.MaterialID}
	if _, ok := r.s.st.spaMaterials[k]; ok {
		return fmt.Errorf("%w: el material ya está asociado a este spa", domain.ErrConflict)
	}
	r.s.st.spaMaterials[k] = *a
	return nil
}

func (r spaMaterialRepo) SetActive(_ context.Context, spaID, materialID string, active bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := pair{spaID, materialID}
	v, ok := r.s.st.spaMaterials[k]
	if !ok {
		return fmt.Errorf("%w: asociación spa-material", domain.ErrNotFound)
	}
	v.Active = active
	r.s.st.spaMaterials[k] = v
	return nil
}

func (r spaMaterialRepo) DeactivateByMaterial(_ context.Context, materialID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for k, v := range r.s.st.spaMaterials {
		if v.MaterialID == materialID {
			v.Active = false
			r.s.st.spaMaterials[k] = v
		}
	}
	return nil
}

func (r spaMaterialRepo) ListBySpa(_ context.Context, spaID string) ([]repository.SpaMaterialDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.SpaMaterialDetail
	for _, a := range r.s.st.spaMaterials {
		m, ok := r.s.st.materials[a.MaterialID]
		if a.SpaID != spaID || !a.Active || !ok || !m.Active {
			continue
		}
		out = append(out, repository.SpaMaterialDetail{SpaID: spaID, MaterialID: m.ID, Name: m.Name, Type: m.Type})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── reseñas ───────────────────────────────────────────────────────────────────

type reviewRepo struct{ s *Store }

func (r reviewRepo) Create(_ context.Context, rv *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !entity.ValidRating(rv.Rating) {
		return fmt.Errorf("insert review: calificacion fuera de rango")
	}
	if _, ok := r.s.st.spas[rv.SpaID]; !ok {
		return fmt.Errorf("insert review: spa inexistente")
	}
	// fecha_creacion estrictamente creciente para un orden estable
	rv.CreatedAt = r.s.tick()
	r.s.st.reviews[rv.ID] = *rv
	return nil
}

func (r reviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if v, ok := r.s.st.reviews[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (r reviewRepo) GetDetail(_ context.Context, id string) (*repository.ReviewDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.st.reviews[id]
	if !ok {
		return nil, nil
	}
	d := r.detail(v)
	return &d, nil
}

func (r reviewRepo) Update(_ context.Context, rv *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.st.reviews[rv.ID]
	if !ok {
		return fmt.Errorf("%w: reseña %s", domain.ErrNotFound, rv.ID)
	}
	cur.Rating, cur.Comment, cur.SpaID, cur.Active = rv.Rating, rv.Comment, rv.SpaID, rv.Active
	r.s.st.reviews[rv.ID] = cur
	return nil
}

func (r reviewRepo) ListBySpa(_ context.Context, spaID string) ([]repository.ReviewDetail, error) {
	return r.list(func(v entity.Review) bool { return v.SpaID == spaID && v.Active }), nil
}

func (r reviewRepo) ListByUser(_ context.Context, userID string) ([]repository.ReviewDetail, error) {
	return r.list(func(v entity.Review) bool { return v.UserID == userID && v.Active }), nil
}

func (r reviewRepo) ListAll(_ context.Context) ([]repository.ReviewDetail, error) {
	return r.list(func(entity.Review) bool { return true }), nil
}

func (r reviewRepo) ActiveRatings(_ context.Context, spaID string) ([]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []int
	for _, v := range r.s.st.reviews {
		if v.SpaID == spaID && v.Active {
			out = append(out, v.Rating)
		}
	}
	return out, nil
}

func (r reviewRepo) list(keep func(entity.Review) bool) []repository.ReviewDetail {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.ReviewDetail
	for _, v := range r.s.st.reviews {
		if keep(v) {
			out = append(out, r.detail(v))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r reviewRepo) detail(v entity.Review) repository.ReviewDetail {
	return repository.ReviewDetail{
		Review:   v,
		UserName: r.s.st.users[v.UserID].Name,
		SpaName:  r.s.st.spas[v.SpaID].Name,
	}
}

// ── reportes ──────────────────────────────────────────────────────────────────

type reportRepo struct{ s *Store }

func (r reportRepo) ReviewCountBySpa(_ context.Context) ([]repository.SpaReviewCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.SpaReviewCount
	for _, spa := range r.s.st.spas {
		if !spa.Active {
			continue
		}
		c := repository.SpaReviewCount{SpaID: spa.ID, SpaName: spa.Name}
		for _, v := range r.s.st.reviews {
			if v.SpaID == spa.ID && v.Active {
				c.Count++
			}
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].SpaName < out[j].SpaName
	})
	return out, nil
}

func (r reportRepo) AverageBySpa(_ context.Context) ([]repository.SpaRatingAverage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []repository.SpaRatingAverage
	for _, spa := range r.s.st.spas {
		if !spa.Active {
			continue
		}
		sum, n := 0, 0
		for _, v := range r.s.st.reviews {
			if v.SpaID == spa.ID && v.Active {
				sum += v.Rating
				n++
			}
		}
		if n == 0 {
			continue
		}
		out = append(out, repository.SpaRatingAverage{
			SpaID: spa.ID, SpaName: spa.Name, Average: float64(sum) / float64(n), Count: n,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Average != out[j].Average {
			return out[i].Average > out[j].Average
		}
		return out[i].SpaName < out[j].SpaName
	})
	return out, nil
}
