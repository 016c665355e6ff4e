package services

import (
	"os"
	"testing"

	"cancha.link/configs/configslog"
)

func TestMain(m *testing.M) {
	configslog.Init()
	os.Exit(m.Run())
}
