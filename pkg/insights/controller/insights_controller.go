package controller

import "github.com/labstack/echo/v4"

type InsightsController interface {
	Article(c echo.Context) error
}
