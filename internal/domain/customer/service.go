package customer

import (
	"context"
)

// Service 顾客领域服务
type Service interface {
	AddCustomer(ctx context.Context, in Input) (*Customer, error)
	GetCustomer(ctx context.Context, id uint) (*Customer, error)
	UpdateCustomer(ctx context.Context, id uint, in Input) (*Customer, error)
	DeleteCustomer(ctx context.Context, id uint) error
	ListCustomers(ctx context.Context) ([]*Customer, error)
}

type service struct {
	repo Repository
}

// NewService 创建顾客领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddCustomer(ctx context.Context, in Input) (*Customer, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c := NewCustomer(in)
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetCustomer(ctx context.Context, id uint) (*Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateCustomer 编辑顾客
// 业务规则:累计消费只能由销售修改,这里只替换联系方式和宝宝信息
func (s *service) UpdateCustomer(ctx context.Context, id uint, in Input) (*Customer, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Apply(in)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) DeleteCustomer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ListCustomers(ctx context.Context) ([]*Customer, error) {
	return s.repo.List(ctx)
}
