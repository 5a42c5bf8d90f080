package structure

// PoolSize exposes poolSize to the external test package.
var PoolSize = poolSize
