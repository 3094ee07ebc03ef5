//go:generate swag init -g main_annotations.go -d . -o ../../docs/swagger

// @title           first-steps API
// @version         1.0
// @description     Starter web API backed by MongoDB and GridFS.
// @BasePath        /
package api
