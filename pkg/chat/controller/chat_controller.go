package controller

import "github.com/labstack/echo/v4"

type ChatController interface {
	History(c echo.Context) error
	Send(c echo.Context) error
}
