package util

import (
	"log"
	"time"
)

// Trace 打印一段逻辑的耗时，用法：defer util.Trace("xxx")()
func Trace(msg string) func() {
	start := time.Now()
	return func() {
		log.Printf("%s cost %v", msg, time.Since(start))
	}
}
