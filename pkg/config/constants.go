package config

const (
	EnvPrefix = "storefront"

	AppEnvDev  = "dev"
	AppEnvProd = "production"

	EnvAppEnv             = "STOREFRONT_APP_ENV"
	EnvPort               = "STOREFRONT_APP_PORT"
	EnvLogLevel           = "STOREFRONT_LOG_LEVEL"
	EnvCatalogProductsURL = "STOREFRONT_CATALOG_PRODUCTS_URL"
	EnvCatalogConfigURL   = "STOREFRONT_CATALOG_CONFIG_URL"
	EnvCartBackend        = "STOREFRONT_CART_BACKEND"
	EnvDBPath             = "STOREFRONT_DB_PATH"
	EnvRedisURL           = "STOREFRONT_REDIS_URL"
	EnvRedisAddr          = "STOREFRONT_REDIS_ADDR"
	EnvCheckoutWebhookURL = "STOREFRONT_CHECKOUT_WEBHOOK_URL"
	EnvWhatsAppNumber     = "STOREFRONT_CHECKOUT_WHATSAPP_NUMBER"
)
