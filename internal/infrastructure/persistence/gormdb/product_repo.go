package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/babystore/internal/domain/product"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// productRepository 商品仓储实现
// 设计说明:
// 1. 实现domain/product/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 数据库错误统一包装为存储错误
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建商品失败")
	}

	// 回填自增ID
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找商品
func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrapf(err, "查询商品失败: id=%d", id)
	}
	return toProductEntity(&model), nil
}

// Update 更新商品可编辑字段
// 说明:用map显式列出列名，库存为0、颜色为空等零值也会写入
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	result := getDB(ctx, r.db).Model(&ProductModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":       p.Name,
			"category":   p.Category,
			"price":      p.Price,
			"stock":      p.Stock,
			"supplier":   p.Supplier,
			"size":       p.Size,
			"age_range":  p.AgeRange,
			"color":      p.Color,
			"material":   p.Material,
			"condition":  p.Condition,
			"updated_at": p.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新商品失败")
	}
	if result.RowsAffected == 0 {
		// mysql只统计实际变化的行，再查一次确认记录是否存在
		var n int64
		if err := getDB(ctx, r.db).Model(&ProductModel{}).Where("id = ?", p.ID).Count(&n).Error; err != nil {
			return apperrors.Wrap(err, "查询商品失败")
		}
		if n == 0 {
			return product.ErrProductNotFound
		}
	}
	return nil
}

// Delete 删除商品(物理删除，幂等)
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&ProductModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除商品失败")
	}
	return nil
}

// List 按名称升序查询商品
func (r *productRepository) List(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	query := getDB(ctx, r.db).Model(&ProductModel{})
	if filter.InStockOnly {
		query = query.Where("stock > 0")
	}

	var models []ProductModel
	if err := query.Order("name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询商品列表失败")
	}

	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}
	return products, nil
}

// LockByName 悲观锁查询同名商品中ID最小的一条(用于销售记账)
// 教学要点:
// 1. 必须使用getDB(ctx)从context获取事务DB
// 2. sqlite方言会忽略FOR UPDATE，依靠单连接串行化写操作
func (r *productRepository) LockByName(ctx context.Context, name string) (*product.Product, error) {
	var model ProductModel
	err := getDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		Order("id ASC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrapf(err, "锁定商品失败: %s", name)
	}
	return toProductEntity(&model), nil
}

// UpdateStock 更新库存(原子操作)
// UPDATE products SET stock = stock + delta WHERE id = ? AND stock + delta >= 0
func (r *productRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	db := getDB(ctx, r.db)
	result := db.Model(&ProductModel{}).
		Where("id = ?", id).
		Where("stock + ? >= 0", delta). // 防止库存为负
		Update("stock", gorm.Expr("stock + ?", delta))
	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "更新库存失败: id=%d", id)
	}

	if result.RowsAffected == 0 {
		// 可能是商品不存在，或者库存不足，再查一次确定原因
		var model ProductModel
		if err := db.First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return product.ErrProductNotFound
			}
			return apperrors.Wrap(err, "查询商品失败")
		}
		return product.NewInsufficientStockError(model.Name, model.Stock, -delta)
	}
	return nil
}

// Count 商品总数
func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := getDB(ctx, r.db).Model(&ProductModel{}).Count(&n).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计商品数量失败")
	}
	return n, nil
}

// CountLowStock 库存<=threshold的商品数
func (r *productRepository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	var n int64
	err := getDB(ctx, r.db).Model(&ProductModel{}).
		Where("stock <= ?", threshold).
		Count(&n).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "统计低库存商品失败")
	}
	return n, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

func toProductModel(p *product.Product) *ProductModel {
	return &ProductModel{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Supplier:  p.Supplier,
		Size:      p.Size,
		AgeRange:  p.AgeRange,
		Color:     p.Color,
		Material:  p.Material,
		Condition: p.Condition,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// toProductEntity GORM模型 → 领域实体
func toProductEntity(model *ProductModel) *product.Product {
	return &product.Product{
		ID:        model.ID,
		Name:      model.Name,
		Category:  model.Category,
		Price:     model.Price,
		Stock:     model.Stock,
		Supplier:  model.Supplier,
		Size:      model.Size,
		AgeRange:  model.AgeRange,
		Color:     model.Color,
		Material:  model.Material,
		Condition: model.Condition,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
