package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mpereira-dev/storefront/internal/errors"
	"github.com/mpereira-dev/storefront/internal/models"
	repository "github.com/mpereira-dev/storefront/internal/repositories"
	"github.com/mpereira-dev/storefront/pkg/sendgrid"
)

type OrderService interface {
	CreateOrder(ctx context.Context, customerID, shoppingSessionID int64, req *models.CreateOrderRequest) (int64, error)
	GetOrderByID(ctx context.Context, customerID, orderID int64) (*models.Order, error)
	ListOrders(ctx context.Context, customerID int64) ([]models.Order, error)
	DeleteOrder(ctx context.Context, customerID, orderID int64) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	customerRepo repository.CustomerRepository
	email        sendgrid.EmailService
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, customerRepo repository.CustomerRepository, email sendgrid.EmailService) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo, customerRepo: customerRepo, email: email}
}

// CreateOrder converts the session's cart into a persisted order. The
// empty-cart precondition is checked before the transaction begins;
// calling it again on the drained cart fails the same way instead of
// creating an empty order.
func (s *orderService) CreateOrder(ctx context.Context, customerID, shoppingSessionID int64, req *models.CreateOrderRequest) (int64, error) {

	cart, err := s.cartRepo.GetCart(ctx, shoppingSessionID)
	if err != nil {
		return 0, errors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	if len(cart.Items) == 0 {
		return 0, errors.PreconditionFailedError("Shopping cart is empty")
	}

	address := &models.ShippingAddress{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	}

	orderID, err := s.orderRepo.CreateOrder(ctx, address, customerID, shoppingSessionID)
	if err != nil {
		return 0, errors.DatabaseError("Failed to create order").WithError(err)
	}

	s.sendConfirmation(customerID, orderID, cart)

	return orderID, nil
}

// sendConfirmation emails the order confirmation best-effort; a delivery
// failure never fails the order.
func (s *orderService) sendConfirmation(customerID, orderID int64, cart *models.Cart) {

	if s.email == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		customer, err := s.customerRepo.GetCustomerByID(ctx, customerID)
		if err != nil {
			slog.Warn("Could not load customer for order confirmation",
				slog.Int64("orderId", orderID), slog.String("error", err.Error()))
			return
		}

		if err := s.email.SendOrderConfirmation(ctx, customer.Email, orderID, cart.Total); err != nil {
			slog.Warn("Failed to send order confirmation email",
				slog.Int64("orderId", orderID), slog.String("error", err.Error()))
		}
	}()
}

func (s *orderService) GetOrderByID(ctx context.Context, customerID, orderID int64) (*models.Order, error) {

	if err := s.checkOrderAccess(ctx, customerID, orderID); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve order").WithError(err)
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID int64) ([]models.Order, error) {

	orders, err := s.orderRepo.GetOrdersByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to retrieve orders").WithError(err)
	}

	return orders, nil
}

// DeleteOrder removes a pending order with its shipping address. The
// status precondition is evaluated after existence and ownership, before
// the deletion transaction begins.
func (s *orderService) DeleteOrder(ctx context.Context, customerID, orderID int64) error {

	if err := s.checkOrderAccess(ctx, customerID, orderID); err != nil {
		return err
	}

	status, err := s.orderRepo.GetOrderStatusByID(ctx, orderID)
	if err != nil {
		return errors.DatabaseError("Failed to get order status").WithError(err)
	}

	if status != models.OrderStatusPending {
		return errors.PreconditionFailedError("Can't delete order: status is not pending")
	}

	if err := s.orderRepo.DeleteOrderByID(ctx, orderID); err != nil {
		return errors.DatabaseError("Failed to delete order").WithError(err)
	}

	return nil
}

// checkOrderAccess enforces existence before ownership so a foreign order
// never leaks beyond the binary ownership check.
func (s *orderService) checkOrderAccess(ctx context.Context, customerID, orderID int64) error {

	valid, err := s.orderRepo.IsValidOrder(ctx, orderID)
	if err != nil {
		return errors.DatabaseError("Failed to check order").WithError(err)
	}

	if !valid {
		return errors.NotFoundError("No order found with this ID")
	}

	owner, err := s.orderRepo.IsOrderOwner(ctx, orderID, customerID)
	if err != nil {
		return errors.DatabaseError("Failed to check order owner").WithError(err)
	}

	if !owner {
		return errors.ForbiddenError("Not authorized to access this order")
	}

	return nil
}
