package migrations

var LoadFS = load
