package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	Snapshot(c echo.Context) error
	Refresh(c echo.Context) error
	Profile(c echo.Context) error
	RegisterFarmer(c echo.Context) error
	AddListing(c echo.Context) error
}
