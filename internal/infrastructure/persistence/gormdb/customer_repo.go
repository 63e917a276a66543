package gormdb

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/babystore/internal/domain/customer"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// customerRepository 顾客仓储实现
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository 创建顾客仓储
func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := &CustomerModel{
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		TotalPurchases: c.TotalPurchases,
		BabyName:       c.BabyName,
		BabyAge:        c.BabyAge,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建顾客失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model CustomerModel
	if err := getDB(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询顾客失败")
	}
	return toCustomerEntity(&model), nil
}

// Update 更新顾客资料
// 注意:total_purchases不在更新列表中，只能由AddPurchase修改
func (r *customerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result := getDB(ctx, r.db).Model(&CustomerModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":       c.Name,
			"email":      c.Email,
			"phone":      c.Phone,
			"baby_name":  c.BabyName,
			"baby_age":   c.BabyAge,
			"updated_at": c.UpdatedAt,
		})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新顾客失败")
	}
	if result.RowsAffected == 0 {
		// mysql只统计实际变化的行，再查一次确认记录是否存在
		var n int64
		if err := getDB(ctx, r.db).Model(&CustomerModel{}).Where("id = ?", c.ID).Count(&n).Error; err != nil {
			return apperrors.Wrap(err, "查询顾客失败")
		}
		if n == 0 {
			return customer.ErrCustomerNotFound
		}
	}
	return nil
}

// Delete 删除顾客(幂等)
func (r *customerRepository) Delete(ctx context.Context, id uint) error {
	if err := getDB(ctx, r.db).Delete(&CustomerModel{}, id).Error; err != nil {
		return apperrors.Wrap(err, "删除顾客失败")
	}
	return nil
}

// List 按名称升序
func (r *customerRepository) List(ctx context.Context) ([]*customer.Customer, error) {
	var models []CustomerModel
	if err := getDB(ctx, r.db).Order("name ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询顾客列表失败")
	}

	customers := make([]*customer.Customer, len(models))
	for i := range models {
		customers[i] = toCustomerEntity(&models[i])
	}
	return customers, nil
}

// FindByName 同名顾客中ID最小的一条
func (r *customerRepository) FindByName(ctx context.Context, name string) (*customer.Customer, error) {
	var model CustomerModel
	err := getDB(ctx, r.db).Where("name = ?", name).Order("id ASC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "查询顾客失败")
	}
	return toCustomerEntity(&model), nil
}

// AddPurchase 累加消费金额
// 教学要点:
// 1. 在Go侧用decimal相加后写回，避免sqlite把decimal列当REAL做浮点加法
// 2. 调用方需在事务中调用(读-改-写)
func (r *customerRepository) AddPurchase(ctx context.Context, id uint, amount decimal.Decimal) error {
	db := getDB(ctx, r.db)

	var model CustomerModel
	if err := db.Select("id", "total_purchases").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return customer.ErrCustomerNotFound
		}
		return apperrors.Wrap(err, "查询顾客失败")
	}

	total := model.TotalPurchases.Add(amount).Round(2)
	err := db.Model(&CustomerModel{}).
		Where("id = ?", id).
		Update("total_purchases", total).Error
	if err != nil {
		return apperrors.Wrapf(err, "更新累计消费失败: id=%d", id)
	}
	return nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := getDB(ctx, r.db).Model(&CustomerModel{}).Count(&n).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计顾客数量失败")
	}
	return n, nil
}

// toCustomerEntity GORM模型 → 领域实体
func toCustomerEntity(model *CustomerModel) *customer.Customer {
	return &customer.Customer{
		ID:             model.ID,
		Name:           model.Name,
		Email:          model.Email,
		Phone:          model.Phone,
		TotalPurchases: model.TotalPurchases,
		BabyName:       model.BabyName,
		BabyAge:        model.BabyAge,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}
