package product

import (
	"context"
)

// Service 商品领域服务接口
// 设计说明:
// 1. 封装商品的业务规则校验(名称、价格、库存、下拉选项)
// 2. 不依赖具体的Repository实现
type Service interface {
	// AddProduct 新增商品
	AddProduct(ctx context.Context, in Input) (*Product, error)

	// GetProduct 根据ID获取商品
	GetProduct(ctx context.Context, id uint) (*Product, error)

	// UpdateProduct 编辑商品
	UpdateProduct(ctx context.Context, id uint, in Input) (*Product, error)

	// DeleteProduct 删除商品(幂等)
	DeleteProduct(ctx context.Context, id uint) error

	// ListProducts 商品列表(按名称升序)
	ListProducts(ctx context.Context, filter Filter) ([]*Product, error)
}

type service struct {
	repo Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddProduct 新增商品
func (s *service) AddProduct(ctx context.Context, in Input) (*Product, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p := NewProduct(in)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProduct 根据ID获取商品
func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProduct 编辑商品
// 业务规则:先校验输入再查库,非法输入不会触发任何读写
func (s *service) UpdateProduct(ctx context.Context, id uint, in Input) (*Product, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Apply(in)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// DeleteProduct 删除商品
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListProducts 商品列表
func (s *service) ListProducts(ctx context.Context, filter Filter) ([]*Product, error) {
	return s.repo.List(ctx, filter)
}
