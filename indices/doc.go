// Package indices provides typed builders for index management.
//
//	Exists  HEAD  index[,index...]
//	Create  POST  index
//	Close   POST  index   body is the close config
package indices
