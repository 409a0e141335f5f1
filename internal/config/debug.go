package config

import "os"

func IsDebug() bool {
	return os.Getenv("GENIE_DEBUG") == "1"
}
