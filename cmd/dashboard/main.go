// Command dashboard runs the Jobzen workforce dashboard server.
//
//	@title			Jobzen Dashboard API
//	@version		1.0
//	@description	Backend-for-frontend of the Jobzen workforce dashboard: sessions, themes and managed users.
//	@BasePath		/
package main

func main() {
	Execute()
}
