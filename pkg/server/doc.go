// Package server wires the HTTP gateway together: the gorilla/mux router,
// access logging and CORS, and the stores and services the endpoints need.
package server
