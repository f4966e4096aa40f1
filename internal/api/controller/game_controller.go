package controller

import (
	"ctchen222/Tic-Tac-Toe-CPU/internal/api/response"
	"ctchen222/Tic-Tac-Toe-CPU/internal/bot"

	"github.com/gin-gonic/gin"
)

// GameController serves the small read-only HTTP surface next to the socket.
type GameController struct{}

// NewGameController creates a new GameController.
func NewGameController() *GameController {
	return &GameController{}
}

// Health reports that the process is serving requests.
func (gc *GameController) Health(c *gin.Context) {
	response.SuccessResponseContent(c, "ok")
}

// Difficulties lists the difficulties a game can be started with.
func (gc *GameController) Difficulties(c *gin.Context) {
	list := make([]any, 0, len(bot.Difficulties))
	for _, d := range bot.Difficulties {
		list = append(list, string(d))
	}
	response.SuccessResponseList(c, list)
}
