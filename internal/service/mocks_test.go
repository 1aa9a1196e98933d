package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

// In-memory stores for exercising the services without a database.

type memClientStore struct {
	clients   map[int64]*domain.Client
	nextID    int64
	lastPatch *store.ClientPatch
}

func newMemClientStore() *memClientStore {
	return &memClientStore{clients: make(map[int64]*domain.Client), nextID: 1}
}

func (s *memClientStore) List(_ context.Context, req store.PageRequest) (*store.Page[store.ClientRow], error) {
	rows := make([]store.ClientRow, 0, len(s.clients))
	for _, c := range s.clients {
		rows = append(rows, store.ClientRow{FullName: c.FullName, Gender: c.Gender, Phone: c.Phone, Email: c.Email})
	}
	return store.NewPage(rows, int64(len(rows)), req), nil
}

func (s *memClientStore) Create(_ context.Context, client *domain.Client) (int64, error) {
	for _, c := range s.clients {
		if c.Phone == client.Phone {
			return 0, store.ErrPhoneExists
		}
	}
	id := s.nextID
	s.nextID++
	copied := *client
	copied.ID = id
	s.clients[id] = &copied
	return id, nil
}

func (s *memClientStore) GetByID(_ context.Context, id int64) (*store.ClientRow, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, nil
	}
	return &store.ClientRow{FullName: c.FullName, Gender: c.Gender, Phone: c.Phone, Email: c.Email}, nil
}

func (s *memClientStore) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	for _, c := range s.clients {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, store.ErrClientNotFound
}

func (s *memClientStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.clients[id]
	return ok, nil
}

func (s *memClientStore) PhoneExists(_ context.Context, phone string, excludeID int64) (bool, error) {
	for id, c := range s.clients {
		if c.Phone == phone && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memClientStore) Update(_ context.Context, id int64, patch store.ClientPatch) error {
	c, ok := s.clients[id]
	if !ok {
		return store.ErrClientNotFound
	}
	s.lastPatch = &patch
	if patch.FullName != nil {
		c.FullName = *patch.FullName
	}
	if patch.Gender != nil {
		c.Gender = *patch.Gender
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = patch.Email
	}
	if patch.HashedPassword != nil {
		c.HashedPassword = *patch.HashedPassword
	}
	return nil
}

func (s *memClientStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.clients[id]; !ok {
		return store.ErrClientNotFound
	}
	delete(s.clients, id)
	return nil
}

type memProductStore struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: make(map[int64]*domain.Product), nextID: 1}
}

func (s *memProductStore) add(title string, amount string) int64 {
	id := s.nextID
	s.nextID++
	s.products[id] = &domain.Product{ID: id, Title: title, Amount: decimal.RequireFromString(amount)}
	return id
}

func (s *memProductStore) List(_ context.Context, req store.PageRequest) (*store.Page[store.ProductRow], error) {
	rows := make([]store.ProductRow, 0, len(s.products))
	for _, p := range s.products {
		rows = append(rows, store.ProductRow{Title: p.Title, Amount: p.Amount})
	}
	return store.NewPage(rows, int64(len(rows)), req), nil
}

func (s *memProductStore) Create(_ context.Context, product *domain.Product) (int64, error) {
	id := s.nextID
	s.nextID++
	copied := *product
	copied.ID = id
	s.products[id] = &copied
	return id, nil
}

func (s *memProductStore) GetByID(_ context.Context, id int64) (*store.ProductRow, error) {
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	return &store.ProductRow{Title: p.Title, Amount: p.Amount}, nil
}

func (s *memProductStore) Amount(_ context.Context, id int64) (decimal.Decimal, error) {
	p, ok := s.products[id]
	if !ok {
		return decimal.Decimal{}, store.ErrProductNotFound
	}
	return p.Amount, nil
}

func (s *memProductStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.products[id]
	return ok, nil
}

func (s *memProductStore) Update(_ context.Context, id int64, patch store.ProductPatch) error {
	p, ok := s.products[id]
	if !ok {
		return store.ErrProductNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	return nil
}

func (s *memProductStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.products[id]; !ok {
		return store.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

type memWarehouseStore struct {
	warehouses map[int64]*domain.Warehouse
	nextID     int64
}

func newMemWarehouseStore() *memWarehouseStore {
	return &memWarehouseStore{warehouses: make(map[int64]*domain.Warehouse), nextID: 1}
}

func (s *memWarehouseStore) add(title string, isActive bool) int64 {
	id := s.nextID
	s.nextID++
	s.warehouses[id] = &domain.Warehouse{ID: id, Title: title, IsActive: isActive}
	return id
}

func (s *memWarehouseStore) List(_ context.Context, req store.PageRequest) (*store.Page[store.WarehouseRow], error) {
	rows := make([]store.WarehouseRow, 0, len(s.warehouses))
	for _, w := range s.warehouses {
		status := store.WarehouseStatusPassive
		if w.IsActive {
			status = store.WarehouseStatusActive
		}
		rows = append(rows, store.WarehouseRow{Title: w.Title, Status: status})
	}
	return store.NewPage(rows, int64(len(rows)), req), nil
}

func (s *memWarehouseStore) Create(_ context.Context, warehouse *domain.Warehouse) (int64, error) {
	id := s.nextID
	s.nextID++
	copied := *warehouse
	copied.ID = id
	s.warehouses[id] = &copied
	return id, nil
}

func (s *memWarehouseStore) GetByID(_ context.Context, id int64) (*store.WarehouseRow, error) {
	w, ok := s.warehouses[id]
	if !ok {
		return nil, nil
	}
	status := store.WarehouseStatusPassive
	if w.IsActive {
		status = store.WarehouseStatusActive
	}
	return &store.WarehouseRow{Title: w.Title, Status: status}, nil
}

func (s *memWarehouseStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.warehouses[id]
	return ok, nil
}

func (s *memWarehouseStore) Update(_ context.Context, id int64, patch store.WarehousePatch) error {
	w, ok := s.warehouses[id]
	if !ok {
		return store.ErrWarehouseNotFound
	}
	if patch.Title != nil {
		w.Title = *patch.Title
	}
	if patch.IsActive != nil {
		w.IsActive = *patch.IsActive
	}
	return nil
}

func (s *memWarehouseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.warehouses[id]; !ok {
		return store.ErrWarehouseNotFound
	}
	delete(s.warehouses, id)
	return nil
}

type memStockStore struct {
	stocks map[int64]*domain.Stock
	nextID int64
}

func newMemStockStore() *memStockStore {
	return &memStockStore{stocks: make(map[int64]*domain.Stock), nextID: 1}
}

func (s *memStockStore) List(_ context.Context, req store.PageRequest) (*store.Page[store.StockRow], error) {
	rows := make([]store.StockRow, 0, len(s.stocks))
	for _, st := range s.stocks {
		rows = append(rows, store.StockRow{Quantity: st.Quantity})
	}
	return store.NewPage(rows, int64(len(rows)), req), nil
}

func (s *memStockStore) Create(_ context.Context, stock *domain.Stock) (int64, error) {
	for _, st := range s.stocks {
		if st.ProductID == stock.ProductID && st.WarehouseID == stock.WarehouseID {
			return 0, store.ErrStockExists
		}
	}
	id := s.nextID
	s.nextID++
	copied := *stock
	copied.ID = id
	s.stocks[id] = &copied
	return id, nil
}

func (s *memStockStore) GetByID(_ context.Context, id int64) (*store.StockRow, error) {
	st, ok := s.stocks[id]
	if !ok {
		return nil, nil
	}
	return &store.StockRow{Quantity: st.Quantity}, nil
}

func (s *memStockStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.stocks[id]
	return ok, nil
}

func (s *memStockStore) PairExists(_ context.Context, productID, warehouseID int64) (bool, error) {
	for _, st := range s.stocks {
		if st.ProductID == productID && st.WarehouseID == warehouseID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memStockStore) Update(_ context.Context, id int64, patch store.StockPatch) error {
	st, ok := s.stocks[id]
	if !ok {
		return store.ErrStockNotFound
	}
	if patch.Quantity != nil {
		st.Quantity = *patch.Quantity
	}
	return nil
}

func (s *memStockStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.stocks[id]; !ok {
		return store.ErrStockNotFound
	}
	delete(s.stocks, id)
	return nil
}

type memOrderStore struct {
	orders   map[int64]*domain.Order
	products *memProductStore
	nextID   int64
}

func newMemOrderStore(products *memProductStore) *memOrderStore {
	return &memOrderStore{orders: make(map[int64]*domain.Order), products: products, nextID: 1}
}

func (s *memOrderStore) List(_ context.Context, req store.PageRequest) (*store.Page[store.OrderRow], error) {
	rows := make([]store.OrderRow, 0, len(s.orders))
	for _, o := range s.orders {
		rows = append(rows, store.OrderRow{UserID: o.ClientID, Quantity: o.Quantity, FullAmount: o.FullAmount})
	}
	return store.NewPage(rows, int64(len(rows)), req), nil
}

func (s *memOrderStore) Create(_ context.Context, order *domain.Order) (int64, error) {
	id := s.nextID
	s.nextID++
	copied := *order
	copied.ID = id
	s.orders[id] = &copied
	return id, nil
}

func (s *memOrderStore) GetByID(_ context.Context, id int64) (*store.OrderRow, error) {
	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	return &store.OrderRow{UserID: o.ClientID, Quantity: o.Quantity, FullAmount: o.FullAmount}, nil
}

func (s *memOrderStore) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := s.orders[id]
	return ok, nil
}

func (s *memOrderStore) ProductAmount(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return decimal.Decimal{}, store.ErrOrderNotFound
	}
	return s.products.Amount(ctx, o.ProductID)
}

func (s *memOrderStore) Update(_ context.Context, id int64, patch store.OrderPatch) error {
	o, ok := s.orders[id]
	if !ok {
		return store.ErrOrderNotFound
	}
	if patch.Quantity != nil {
		o.Quantity = *patch.Quantity
	}
	if patch.FullAmount != nil {
		o.FullAmount = *patch.FullAmount
	}
	return nil
}

func (s *memOrderStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.orders[id]; !ok {
		return store.ErrOrderNotFound
	}
	delete(s.orders, id)
	return nil
}
