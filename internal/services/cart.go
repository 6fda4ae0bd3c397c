package service

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	repository "github.com/mpereira-dev/storefront/internal/repositories"
)

// CartService applies the domain checks (product existence, cart
// uniqueness, item ownership) before any ledger transaction begins.
type CartService interface {
	GetCart(ctx context.Context, shoppingSessionID int64) (*models.Cart, error)
	AddItem(ctx context.Context, shoppingSessionID int64, req *models.AddCartItemRequest) error
	UpdateItemQuantity(ctx context.Context, shoppingSessionID, itemID int64, quantity int) error
	RemoveItem(ctx context.Context, shoppingSessionID, itemID int64) error
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

func (s *cartService) GetCart(ctx context.Context, shoppingSessionID int64) (*models.Cart, error) {

	cart, err := s.cartRepo.GetCart(ctx, shoppingSessionID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, shoppingSessionID int64, req *models.AddCartItemRequest) error {

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NotFoundError("Can't find a product with this productId").WithError(err)
		}
		return errors.DatabaseError("Failed to look up product").WithError(err)
	}

	inCart, err := s.cartRepo.IsProductInCart(ctx, req.ProductID, shoppingSessionID)
	if err != nil {
		return errors.DatabaseError("Failed to check cart").WithError(err)
	}

	if inCart {
		return errors.ConflictError("This product is already in the cart")
	}

	if err := s.cartRepo.AddItem(ctx, shoppingSessionID, req.ProductID, req.Quantity, product.Price); err != nil {
		return errors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, shoppingSessionID, itemID int64, quantity int) error {

	if err := s.checkItemAccess(ctx, shoppingSessionID, itemID); err != nil {
		return err
	}

	if err := s.cartRepo.UpdateItemQuantity(ctx, itemID, quantity); err != nil {
		return errors.DatabaseError("Failed to update cart item").WithError(err)
	}

	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, shoppingSessionID, itemID int64) error {

	if err := s.checkItemAccess(ctx, shoppingSessionID, itemID); err != nil {
		return err
	}

	if err := s.cartRepo.RemoveItem(ctx, itemID); err != nil {
		return errors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return nil
}

// checkItemAccess runs the existence-then-ownership checks in order: a
// missing item yields not-found, an existing item under another session
// yields forbidden.
func (s *cartService) checkItemAccess(ctx context.Context, shoppingSessionID, itemID int64) error {

	valid, err := s.cartRepo.IsValidCartItem(ctx, itemID)
	if err != nil {
		return errors.DatabaseError("Failed to check cart item").WithError(err)
	}

	if !valid {
		return errors.NotFoundError("Can't find a cart item with the ID value provided")
	}

	owner, err := s.cartRepo.IsCartItemOwner(ctx, itemID, shoppingSessionID)
	if err != nil {
		return errors.DatabaseError("Failed to check cart item owner").WithError(err)
	}

	if !owner {
		return errors.ForbiddenError("Not authorized to access this cart item")
	}

	return nil
}
