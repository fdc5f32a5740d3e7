package main

import (
	"flag"
	"fmt"

	"github.com/rachel-online/server/network"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
)

func main() {
	tcpAddr := flag.String("tcp", ":9999", "tcp listen address")
	wsAddr := flag.String("ws", ":9998", "websocket listen address")
	flag.Parse()
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	async.Async(func() {
		log.Error(network.NewWebsocketServer(*wsAddr).Serve())
	})
	server := network.NewTcpServer(*tcpAddr)
	log.Error(server.Serve())
}
