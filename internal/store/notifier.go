package store

import "sync"

// notifier 变更通知
// 界面层通过 OnChange 注册回调以便在数据替换后重绘
// 回调在 setter 完成后同步调用，注册方自行保证回调轻量
type notifier struct {
	mu        sync.Mutex
	callbacks []func()
}

// OnChange 注册一个变更回调
func (n *notifier) OnChange(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.callbacks = append(n.callbacks, fn)
}

// notify 触发所有回调
func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), len(n.callbacks))
	copy(fns, n.callbacks)
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
