package controller

import "github.com/labstack/echo/v4"

type FeedController interface {
	Districts(c echo.Context) error
	Suppliers(c echo.Context) error
}
